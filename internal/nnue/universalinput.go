package nnue

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

// univHiddenDims is the width of UniversalInput's raw weight/bias storage:
// twice UnivOutputSize, since the squared-clipped activation below combines
// two hidden lanes into each output lane. Grounded on original_source/
// reversi_core/src/eval/universal_input.rs's HIDDEN_LAYER_SIZE = OUTPUT_SIZE*2.
const univHiddenDims = 2 * UnivOutputSize

// UniversalInput is the main network's input transformer. Unlike
// PhaseAdaptiveInput it is not banked by game phase: a single weight set
// covers every ply the main network is ever evaluated at. Grounded on
// original_source/reversi_core/src/eval/universal_input.rs, which likewise
// carries one fixed-size weight set rather than PhaseAdaptiveInput's
// NumPhaseAdaptiveInput banks.
type UniversalInput struct {
	biases  [univHiddenDims]int16
	weights []int16 // row-major: weights[feature*univHiddenDims+j]
}

// NewUniversalInput allocates a zeroed transformer sized for the full flat
// pattern-feature space.
func NewUniversalInput() *UniversalInput {
	return &UniversalInput{
		weights: make([]int16, pattern.InputFeatureDims*univHiddenDims),
	}
}

// Load reads the transformer's biases then its weight rows, little-endian,
// then doubles every value, matching universal_input.rs's load(): the file
// on disk stores un-doubled int16s, and the ×2 is folded in once here so
// Forward's clamp bound lines up with the doubled accumulator scale.
func (u *UniversalInput) Load(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, u.biases[:]); err != nil {
		return fmt.Errorf("read universal-input biases: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, u.weights); err != nil {
		return fmt.Errorf("read universal-input weights: %w", err)
	}
	for i := range u.biases {
		u.biases[i] *= 2
	}
	for i := range u.weights {
		u.weights[i] *= 2
	}
	return nil
}

// write is the mirror of Load, used by SaveNetwork for round-trip tests. It
// halves before writing so a Load immediately after reproduces the same
// in-memory (doubled) state Load would have produced from the original file.
func (u *UniversalInput) write(w io.Writer) error {
	biases := u.biases
	for i := range biases {
		biases[i] /= 2
	}
	weights := make([]int16, len(u.weights))
	for i, v := range u.weights {
		weights[i] = v / 2
	}

	if err := binary.Write(w, binary.LittleEndian, biases[:]); err != nil {
		return fmt.Errorf("write universal-input biases: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, weights); err != nil {
		return fmt.Errorf("write universal-input weights: %w", err)
	}
	return nil
}

// Forward accumulates the weight rows for each active feature index plus
// the bias into univHiddenDims lanes, then applies the "squared clipped"
// activation: both halves are clamped to [0,254] and their product is
// scaled down by >>9, producing UnivOutputSize output bytes. Grounded on
// universal_input.rs's forward(): sum0/sum1 clamp(0, 127*2), output =
// (sum0*sum1)/512.
func (u *UniversalInput) Forward(featureIndices []uint32, output []uint8) {
	var acc [univHiddenDims]int32
	for j := range acc {
		acc[j] = int32(u.biases[j])
	}

	for _, fi := range featureIndices {
		row := u.weights[fi*univHiddenDims : fi*univHiddenDims+univHiddenDims]
		for j, w := range row {
			acc[j] += int32(w)
		}
	}

	for i := 0; i < UnivOutputSize; i++ {
		sum0 := clamp(acc[i], 0, 254)
		sum1 := clamp(acc[i+UnivOutputSize], 0, 254)
		output[i] = uint8((sum0 * sum1) >> 9)
	}
}
