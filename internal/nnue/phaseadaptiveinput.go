package nnue

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

// PhaseAdaptiveInput is the input transformer: one row of int16 weights per
// flat pattern-feature index, summed over the (at most NumPatternFeatures)
// active features of a position and clamped into the [0,127] range the
// first quantized layer expects. There are NumPhaseAdaptiveInput instances,
// one per 10-ply band of the game, so the transformer itself can specialize
// to how pattern values shift in importance as the game empties out.
type PhaseAdaptiveInput struct {
	biases  [PAOutputSize]int16
	weights []int16 // row-major: weights[feature*PAOutputSize+j]
}

// NewPhaseAdaptiveInput allocates a zeroed transformer sized for the full
// flat pattern-feature space.
func NewPhaseAdaptiveInput() *PhaseAdaptiveInput {
	return &PhaseAdaptiveInput{
		weights: make([]int16, pattern.InputFeatureDims*PAOutputSize),
	}
}

// Load reads the transformer's biases then its weight rows, little-endian.
func (pa *PhaseAdaptiveInput) Load(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, pa.biases[:]); err != nil {
		return fmt.Errorf("read phase-adaptive-input biases: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, pa.weights); err != nil {
		return fmt.Errorf("read phase-adaptive-input weights: %w", err)
	}
	return nil
}

// write is the mirror of Load, used by SaveNetworkSmall for round-trip tests.
func (pa *PhaseAdaptiveInput) write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, pa.biases[:]); err != nil {
		return fmt.Errorf("write phase-adaptive-input biases: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, pa.weights); err != nil {
		return fmt.Errorf("write phase-adaptive-input weights: %w", err)
	}
	return nil
}

// Forward accumulates the weight rows for each active feature index plus
// the bias, clamping each accumulator lane to [0,127].
func (pa *PhaseAdaptiveInput) Forward(featureIndices []uint32, output []uint8) {
	var acc [PAOutputSize]int32
	for j := range acc {
		acc[j] = int32(pa.biases[j])
	}

	for _, fi := range featureIndices {
		row := pa.weights[fi*PAOutputSize : fi*PAOutputSize+PAOutputSize]
		for j, w := range row {
			acc[j] += int32(w)
		}
	}

	for j := 0; j < PAOutputSize; j++ {
		v := acc[j]
		if v < 0 {
			v = 0
		} else if v > 127 {
			v = 127
		}
		output[j] = uint8(v)
	}
}
