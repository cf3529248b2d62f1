package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether log lines and timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where log lines and timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// Logf writes one formatted line to Output when Verbose is set.
func Logf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(Output, format+"\n", args...)
}

// TimingStats holds timing information for the stages of a run
type TimingStats struct {
	TotalTime        time.Duration
	HEInitTime       time.Duration
	ModelInitTime    time.Duration
	PlainForwardTime time.Duration
	EncryptionTime   time.Duration
	HEForwardTime    time.Duration
	DecryptionTime   time.Duration
}

// Track runs fn and adds its wall time to *into.
func Track(into *time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	*into += time.Since(start)
	return err
}

// PrintTimingStats prints the per-stage breakdown for runs passes.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, runs int) {
	if !Verbose {
		return
	}
	if runs <= 0 {
		runs = 1
	}
	pct := func(d time.Duration) float64 {
		if stats.TotalTime == 0 {
			return 0
		}
		return float64(d) / float64(stats.TotalTime) * 100
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Passes completed: %d\n", runs)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  HE initialization: %v (%.1f%%)\n", stats.HEInitTime, pct(stats.HEInitTime))
	fmt.Fprintf(Output, "  Model initialization: %v (%.1f%%)\n", stats.ModelInitTime, pct(stats.ModelInitTime))
	fmt.Fprintf(Output, "  Plain forward: %v (%.1f%%)\n", stats.PlainForwardTime, pct(stats.PlainForwardTime))
	fmt.Fprintf(Output, "  Encryption: %v (%.1f%%)\n", stats.EncryptionTime, pct(stats.EncryptionTime))
	fmt.Fprintf(Output, "  HE forward: %v (%.1f%%)\n", stats.HEForwardTime, pct(stats.HEForwardTime))
	fmt.Fprintf(Output, "  Decryption: %v (%.1f%%)\n", stats.DecryptionTime, pct(stats.DecryptionTime))
	fmt.Fprintln(Output, "\nPer pass:")
	fmt.Fprintf(Output, "  Average HE forward: %.1fµs\n", DurationUS(stats.HEForwardTime)/float64(runs))
	fmt.Fprintf(Output, "  Average plain forward: %.1fµs\n", DurationUS(stats.PlainForwardTime)/float64(runs))
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
