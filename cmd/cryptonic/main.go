// cryptonic: runs a small dense network in plaintext and again with its
// first layer evaluated on CKKS ciphertexts, then compares the outputs.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"cryptonic/cipher"
	"cryptonic/core/ckkswrapper"
	"cryptonic/nn"
	"cryptonic/nn/layers"
	"cryptonic/tensor"
	"cryptonic/utils"
)

var (
	arch      = flag.String("arch", "4 8 2", "Layer widths, input first")
	layout    = flag.String("layout", "row", "Input layout: row or col")
	logN      = flag.Int("logN", ckkswrapper.DefaultLogN, "Ring dimension log2")
	encrypted = flag.Bool("encrypted", true, "Also run the first layer under CKKS")
	scale     = flag.Float64("scale", 256, "Weight quantization scale for the encrypted layer")
	runs      = flag.Int("runs", 1, "Forward passes to time")
	verbose   = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	widths, err := utils.ParseArchitecture(*arch)
	if err != nil {
		fail(err)
	}
	cfg := &utils.Config{
		Architecture: widths,
		Layout:       *layout,
		LogN:         *logN,
		Encrypted:    *encrypted,
		Scale:        *scale,
		Runs:         *runs,
	}
	if err := utils.ValidateConfig(cfg); err != nil {
		fail(err)
	}
	if err := run(cfg); err != nil {
		fail(err)
	}
}

func run(cfg *utils.Config) error {
	runs := cfg.Runs
	var stats utils.TimingStats
	start := time.Now()
	defer func() {
		stats.TotalTime = time.Since(start)
		utils.PrintTimingStats(&stats, runs)
	}()

	lay, err := utils.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}

	var net nn.Sequential[float64]
	var first *layers.Dense[float64]
	if err := utils.Track(&stats.ModelInitTime, func() error {
		var err error
		net, first, err = buildNetwork(cfg.Architecture)
		return err
	}); err != nil {
		return err
	}
	utils.Logf("Model ready: %v, %d layers", cfg.Architecture, len(net.Layers))

	x := tensor.RandUniform([]int{cfg.Architecture[0]}, lay, 1)
	utils.Logf("Input: %v", x)

	var plain *tensor.Matrix[float64]
	for range runs {
		if err := utils.Track(&stats.PlainForwardTime, func() error {
			plain, err = net.Forward(x)
			return err
		}); err != nil {
			return fmt.Errorf("plain forward: %w", err)
		}
	}
	utils.Logf("Plain output: %v", plain)

	if !cfg.Encrypted {
		return nil
	}

	var kit *cipher.Kit
	if err := utils.Track(&stats.HEInitTime, func() error {
		he, err := ckkswrapper.NewHeContextWithLogN(cfg.LogN)
		if err != nil {
			return err
		}
		kit = cipher.NewKit(he)
		return nil
	}); err != nil {
		return err
	}
	utils.Logf("HE context ready (logN=%d, slots=%d)", cfg.LogN, kit.He.Params.MaxSlots())

	server, err := layers.Quantize(first, cfg.Scale)
	if err != nil {
		return err
	}

	var mixed *tensor.Matrix[float64]
	for range runs {
		if mixed, err = splitForward(kit, server, &net, x, cfg.Scale, &stats); err != nil {
			return err
		}
	}
	utils.Logf("Split output: %v", mixed)
	kit.Eval.PrintCounters(fmt.Sprintf("encrypted %v", server.OutputShape()))

	diff, err := tensor.Subtract(plain, mixed)
	if err != nil {
		return err
	}
	maxErr := 0.0
	if err := diff.Apply(func(v float64) { maxErr = math.Max(maxErr, math.Abs(v)) }); err != nil {
		return err
	}
	utils.Logf("Max |plain - split|: %.3e", maxErr)
	return nil
}

// buildNetwork stacks Dense+ReLU pairs, with no ReLU after the last Dense.
func buildNetwork(widths []int) (nn.Sequential[float64], *layers.Dense[float64], error) {
	var net nn.Sequential[float64]
	var first *layers.Dense[float64]
	for i := 0; i+1 < len(widths); i++ {
		d := layers.NewDenseRand(widths[i], widths[i+1])
		if first == nil {
			first = d
		}
		if _, err := net.Add(d); err != nil {
			return net, nil, err
		}
		if i+2 < len(widths) {
			if _, err := net.Add(layers.NewReLU[float64](d.OutputShape())); err != nil {
				return net, nil, err
			}
		}
	}
	return net, first, nil
}

// splitForward runs the quantized first layer on ciphertexts, decrypts and
// rescales its output, and finishes the remaining layers in plaintext.
func splitForward(kit *cipher.Kit, server *layers.EncryptedDense, net *nn.Sequential[float64], x *tensor.Matrix[float64], scale float64, stats *utils.TimingStats) (*tensor.Matrix[float64], error) {
	var ex, ey *tensor.Matrix[cipher.Value]
	var y *tensor.Matrix[float64]

	if err := utils.Track(&stats.EncryptionTime, func() (err error) {
		ex, err = cipher.Encrypt(kit, x)
		return err
	}); err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	if err := utils.Track(&stats.HEForwardTime, func() (err error) {
		if ey, err = server.Forward(ex); err != nil {
			return err
		}
		ey, err = tensor.Map(ey, kit.Refresh)
		return err
	}); err != nil {
		return nil, fmt.Errorf("encrypted forward: %w", err)
	}
	if err := utils.Track(&stats.DecryptionTime, func() (err error) {
		y, err = cipher.Decrypt(kit, ey)
		return err
	}); err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	// Quantized parameters carry one factor of scale.
	if err := y.ApplyMut(func(v *float64) { *v /= scale }); err != nil {
		return nil, err
	}

	rest := nn.Sequential[float64]{Layers: net.Layers[1:]}
	if len(rest.Layers) == 0 {
		return y, nil
	}
	return rest.Forward(y)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "cryptonic: %v\n", err)
	os.Exit(1)
}
