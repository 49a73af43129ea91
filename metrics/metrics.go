// Package metrics parses pod benchmark log files and reduces them to
// descriptive statistics.
//
// The expected input is a line-oriented text file where each data row has
// the form
//
//	iteration,total_latency,avg_latency_per_pod,batch_readiness_time
//
// interleaved with per-iteration headers and summary footers written by the
// benchmark driver. Only the 4th field of each data row contributes a sample.
package metrics

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// skipPrefixes mark non-data lines: iteration headers and the two summary
// footers appended by the benchmark driver.
var skipPrefixes = []string{"Iteration", "Average Batch", "Final Average"}

// Summary holds descriptive statistics over a sample set of batch timings,
// all in milliseconds.
type Summary struct {
	Mean   float64
	StdDev float64 // sample std dev (n-1 denominator); NaN when n < 2
	Min    float64
	Max    float64
}

// ReadBatchTimes reads a metrics file and returns the batch readiness (or
// deletion) time of every valid data row, in file order. Malformed rows are
// skipped silently; the returned slice is empty when the file holds no
// usable data, which is not an error.
func ReadBatchTimes(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open metrics file: %w", err)
	}
	defer f.Close()

	var values []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if v, ok := parseLine(sc.Text()); ok {
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read metrics file: %w", err)
	}
	return values, nil
}

// parseLine extracts the batch time from a single line. The second return
// is false for blank lines, header/footer lines, rows with fewer than four
// fields, and rows whose 4th field is not a number.
func parseLine(line string) (float64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return 0, false
		}
	}
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Summarize computes mean, sample standard deviation, min and max over the
// full sample set. The caller must ensure values is non-empty. A single
// sample has no defined sample deviation, so StdDev is NaN for n < 2.
func Summarize(values []float64) Summary {
	n := float64(len(values))
	var sum float64
	min, max := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / n

	std := math.NaN()
	if len(values) >= 2 {
		var varsum float64
		for _, v := range values {
			d := v - mean
			varsum += d * d
		}
		std = math.Sqrt(varsum / (n - 1))
	}

	return Summary{Mean: mean, StdDev: std, Min: min, Max: max}
}
