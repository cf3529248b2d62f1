package utils

import (
	"fmt"
	"strconv"
	"strings"

	"cryptonic/tensor"
)

// Config holds the settings of one demo run.
type Config struct {
	Architecture []int
	Layout       string
	LogN         int
	Encrypted    bool
	// Scale multiplies float weights before they are rounded for the
	// encrypted layers.
	Scale float64
	// Runs is the number of timed forward passes.
	Runs int
}

// ParseArchitecture parses architecture string into slice of integers
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(strings.ReplaceAll(archStr, ",", " "))
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("architecture entry %d: %w", i, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// ParseLayout maps "row"/"rowmajor" and "col"/"column"/"columnmajor",
// case-insensitively, to a tensor.Layout.
func ParseLayout(s string) (tensor.Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "rowmajor", "row-major":
		return tensor.RowMajor, nil
	case "col", "column", "columnmajor", "column-major":
		return tensor.ColumnMajor, nil
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

// ValidateConfig validates the run configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) < 2 {
		return fmt.Errorf("architecture must have at least 2 layers (input and output)")
	}
	for i, n := range config.Architecture {
		if n <= 0 {
			return fmt.Errorf("layer %d width must be positive, got %d", i, n)
		}
	}

	if _, err := ParseLayout(config.Layout); err != nil {
		return err
	}

	if config.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", config.Runs)
	}

	if config.Encrypted {
		if config.LogN < 10 || config.LogN > 16 {
			return fmt.Errorf("logN must be in [10, 16], got %d", config.LogN)
		}
		if config.Scale <= 0 {
			return fmt.Errorf("scale must be positive")
		}
	}

	return nil
}
