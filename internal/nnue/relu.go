package nnue

// clippedReLU applies clamp(x >> HiddenWeightScaleBits, 0, 127) to each
// element of input, writing the result into output. input and output may
// have different declared lengths; only len(output) elements are produced.
func clippedReLU(input []int32, output []uint8) {
	for i := range output {
		v := input[i] >> HiddenWeightScaleBits
		if v < 0 {
			v = 0
		} else if v > 127 {
			v = 127
		}
		output[i] = uint8(v)
	}
}
