package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptonic/tensor"
)

func TestParseArchitecture(t *testing.T) {
	arch, err := ParseArchitecture("4 8,2")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 2}, arch)

	_, err = ParseArchitecture("4 x 2")
	assert.Error(t, err)
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]tensor.Layout{
		"row":          tensor.RowMajor,
		"RowMajor":     tensor.RowMajor,
		" col ":        tensor.ColumnMajor,
		"column-major": tensor.ColumnMajor,
	} {
		got, err := ParseLayout(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLayout("diagonal")
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	ok := Config{Architecture: []int{4, 2}, Layout: "row", LogN: 12, Encrypted: true, Scale: 64, Runs: 1}
	assert.NoError(t, ValidateConfig(&ok))

	cases := map[string]func(c *Config){
		"short arch": func(c *Config) { c.Architecture = []int{4} },
		"zero width": func(c *Config) { c.Architecture = []int{4, 0} },
		"bad layout": func(c *Config) { c.Layout = "diag" },
		"small logN": func(c *Config) { c.LogN = 8 },
		"no scale":   func(c *Config) { c.Scale = 0 },
		"zero runs":  func(c *Config) { c.Runs = 0 },
		"neg runs":   func(c *Config) { c.Runs = -3 },
	}
	for name, mutate := range cases {
		c := ok
		c.Architecture = append([]int(nil), ok.Architecture...)
		mutate(&c)
		assert.Error(t, ValidateConfig(&c), name)
	}

	plain := Config{Architecture: []int{4, 2}, Layout: "col", Runs: 2}
	assert.NoError(t, ValidateConfig(&plain))
}
