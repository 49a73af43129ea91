package podbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

const testDatasetJSON = `{
	"pod_counts": [10, 50],
	"use_cases": {
		"UC9": {
			"K8s":    {"mean": [3000, 9842], "min": [2877, 9369], "max": [3165, 10180], "std": [99, 287]},
			"CODECO": {"mean": [3120, 11357], "min": [3029, 10734], "max": [3324, 11607], "std": [114, 318]}
		}
	}
}`

func TestChartReadinessCmd(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "readiness.json")
	if err := os.WriteFile(dataPath, []byte(testDatasetJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "out")

	viper.Set("readiness-data", dataPath)
	viper.Set("readiness-out", outDir)
	defer viper.Set("readiness-data", nil)
	defer viper.Set("readiness-out", nil)

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	if err := chartReadinessCmd.RunE(chartReadinessCmd, nil); err != nil {
		t.Fatalf("chart readiness failed: %v", err)
	}

	for _, name := range []string{"readiness_10pods.png", "readiness_50pods.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if !strings.Contains(b.String(), "Saved:") {
		t.Errorf("expected Saved: lines in output, got:\n%s", b.String())
	}
}

func TestChartDeletionCmd_MissingDataset(t *testing.T) {
	viper.Set("deletion-data", filepath.Join(t.TempDir(), "missing.json"))
	viper.Set("deletion-out", t.TempDir())
	defer viper.Set("deletion-data", nil)
	defer viper.Set("deletion-out", nil)

	if err := chartDeletionCmd.RunE(chartDeletionCmd, nil); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}
