package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
)

// LinearLayer is a quantized affine layer: int8 weights, int32 biases,
// consuming uint8 (post-ReLU) activations and producing int32 accumulators.
// This is the scalar reference form of the SIMD-oriented affine transform
// sfnnue/layers/affine_transform.go ports from Stockfish;
// weight storage here stays in plain row-major order since there is no SIMD
// lane layout to respect in a portable scalar implementation.
type LinearLayer struct {
	inputDims  int
	outputDims int
	biases     []int32
	weights    []int8 // row-major: weights[o*inputDims+i]
}

// NewLinearLayer allocates a zeroed layer of the given shape.
func NewLinearLayer(inputDims, outputDims int) *LinearLayer {
	return &LinearLayer{
		inputDims:  inputDims,
		outputDims: outputDims,
		biases:     make([]int32, outputDims),
		weights:    make([]int8, outputDims*inputDims),
	}
}

// Load reads the layer's biases (int32 x outputDims) followed by its
// weights (int8 x outputDims*inputDims), both little-endian, matching the
// sfnnue's binary.Read-based weight file format.
func (l *LinearLayer) Load(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, l.biases); err != nil {
		return fmt.Errorf("read layer biases: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, l.weights); err != nil {
		return fmt.Errorf("read layer weights: %w", err)
	}
	return nil
}

// write is the mirror of Load, used by SaveNetworkSmall for round-trip tests.
func (l *LinearLayer) write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, l.biases); err != nil {
		return fmt.Errorf("write layer biases: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, l.weights); err != nil {
		return fmt.Errorf("write layer weights: %w", err)
	}
	return nil
}

// Forward computes output[o] = bias[o] + sum_i input[i]*weight[o][i].
func (l *LinearLayer) Forward(input []uint8, output []int32) {
	for o := 0; o < l.outputDims; o++ {
		row := l.weights[o*l.inputDims : (o+1)*l.inputDims]
		sum := l.biases[o]
		for i, in := range input[:l.inputDims] {
			sum += int32(in) * int32(row[i])
		}
		output[o] = sum
	}
}
