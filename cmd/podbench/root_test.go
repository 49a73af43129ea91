package podbench

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		if c.Name() == "chart" {
			// chart should have subcommands 'readiness' and 'deletion'
			sub := map[string]bool{}
			for _, sc := range c.Commands() {
				sub[sc.Name()] = true
			}
			if !sub["readiness"] || !sub["deletion"] {
				t.Fatalf("chart subcommands missing: %v", sub)
			}
		}
	}
	for _, want := range []string{"summarize", "chart"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(summarizeCmd)
	check(chartCmd)
}
