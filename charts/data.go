// Package charts renders the grouped platform-comparison bar charts from an
// externally supplied dataset of summary statistics.
package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Platforms fixes the bar order within each use-case group.
var Platforms = []string{"K8s", "CODECO"}

// PlatformStats holds one platform's summary statistics for a single use
// case. Each slice is aligned with Dataset.PodCounts.
type PlatformStats struct {
	Mean []float64 `json:"mean"`
	Min  []float64 `json:"min"`
	Max  []float64 `json:"max"`
	Std  []float64 `json:"std"`
}

// Dataset is the loaded chart input: per use case, per platform, the
// summary statistics for every benchmarked pod count.
type Dataset struct {
	PodCounts []int                               `json:"pod_counts"`
	UseCases  map[string]map[string]PlatformStats `json:"use_cases"`
}

// LoadDataset reads and parses a dataset file from the given path.
// It returns an error if the file cannot be read or parsed, or if the
// dataset is structurally inconsistent.
func LoadDataset(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset file: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return nil, fmt.Errorf("could not parse dataset JSON: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	if len(ds.PodCounts) == 0 {
		return errors.New("dataset must list at least one pod count")
	}
	if len(ds.UseCases) == 0 {
		return errors.New("dataset must contain at least one use case")
	}
	for uc, platforms := range ds.UseCases {
		for _, platform := range Platforms {
			st, ok := platforms[platform]
			if !ok {
				return fmt.Errorf("use case %s is missing platform %s", uc, platform)
			}
			n := len(ds.PodCounts)
			if len(st.Mean) != n || len(st.Min) != n || len(st.Max) != n || len(st.Std) != n {
				return fmt.Errorf("use case %s platform %s: stat slices must have %d entries", uc, platform, n)
			}
		}
	}
	return nil
}
