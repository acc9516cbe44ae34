package pattern

//go:generate sh -c "go run ./gen > tables_gen.go"

// pow3[n] is 3^n, precomputed up to MaxPatternSquares. Plain arithmetic,
// not pattern geometry, so unlike tables_gen.go's content it is not worth
// routing through the generator.
var pow3 [MaxPatternSquares + 1]uint32

func init() {
	pow3[0] = 1
	for i := 1; i <= MaxPatternSquares; i++ {
		pow3[i] = pow3[i-1] * 3
	}
}
