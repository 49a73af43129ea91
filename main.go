// Package main is the entry point for the podbench command-line tool.
package main

import (
	"github.com/gkoukis/podbench/cmd/podbench"
)

func main() {
	podbench.Execute()
}
