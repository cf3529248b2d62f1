package cipher

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/ckks"

	"cryptonic/utils"
)

// Evaluator wraps a ckks.Evaluator to count the operations Values run.
type Evaluator struct {
	eval *ckks.Evaluator

	// Operation counters
	AddCount      int
	SubCount      int
	MulConstCount int
	AddConstCount int
}

// NewEvaluator creates a new counting evaluator
func NewEvaluator(eval *ckks.Evaluator) *Evaluator {
	return &Evaluator{eval: eval}
}

// ResetCounters resets all operation counters to zero
func (e *Evaluator) ResetCounters() {
	e.AddCount = 0
	e.SubCount = 0
	e.MulConstCount = 0
	e.AddConstCount = 0
}

// PrintCounters prints the current operation counts.
// Respects utils.Verbose flag - does nothing if Verbose is false.
func (e *Evaluator) PrintCounters(phaseName string) {
	if !utils.Verbose {
		return
	}
	fmt.Fprintf(utils.Output, "=== Phase: %s ===\n", phaseName)
	fmt.Fprintf(utils.Output, "Adds: %d, Subs: %d, Const muls: %d, Const adds: %d\n",
		e.AddCount, e.SubCount, e.MulConstCount, e.AddConstCount)
}

func (e *Evaluator) addNew(a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	e.AddCount++
	return e.eval.AddNew(a, b)
}

func (e *Evaluator) subNew(a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	e.SubCount++
	return e.eval.SubNew(a, b)
}

func (e *Evaluator) mulConstNew(ct *rlwe.Ciphertext, k int32) (*rlwe.Ciphertext, error) {
	e.MulConstCount++
	return e.eval.MulNew(ct, int64(k))
}

func (e *Evaluator) addConstNew(ct *rlwe.Ciphertext, k int32) (*rlwe.Ciphertext, error) {
	e.AddConstCount++
	return e.eval.AddNew(ct, int64(k))
}
