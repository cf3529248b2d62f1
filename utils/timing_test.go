package utils

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-1234.567) > 0.001 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}

func captureOutput(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	Output, Verbose = &buf, verbose
	t.Cleanup(func() { Output, Verbose = oldOut, oldVerbose })
	return &buf
}

func TestLogf(t *testing.T) {
	buf := captureOutput(t, true)
	Logf("layer %d: %v", 2, []int{3})
	assert.Equal(t, "layer 2: [3]\n", buf.String())

	buf = captureOutput(t, false)
	Logf("hidden")
	assert.Empty(t, buf.String())
}

func TestTrack(t *testing.T) {
	var d time.Duration
	boom := errors.New("boom")
	err := Track(&d, func() error {
		time.Sleep(time.Millisecond)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.GreaterOrEqual(t, d, time.Millisecond)
}

func TestPrintTimingStats(t *testing.T) {
	buf := captureOutput(t, true)
	PrintTimingStats(&TimingStats{
		TotalTime:     10 * time.Millisecond,
		HEForwardTime: 5 * time.Millisecond,
	}, 0)
	out := buf.String()
	assert.Contains(t, out, "=== TIMING STATISTICS ===")
	assert.Contains(t, out, "HE forward: 5ms (50.0%)")
	assert.Contains(t, out, "Average HE forward: 5000.0µs")

	buf = captureOutput(t, false)
	PrintTimingStats(&TimingStats{}, 1)
	assert.Empty(t, buf.String())
}
