// Command gen emits internal/pattern/tables_gen.go: the 16 pattern square
// lists, their masks, the per-square pattern-membership table used for
// incremental updates, and the flat feature-offset table. Grounded on
// original_source/codegen/src/main.rs, which generates the equivalent
// EVAL_FEATURE/EVAL_X2F tables for the same pattern atlas as checked-in Rust
// source rather than computing them at process start.
//
// Run with: go run ./internal/pattern/gen > internal/pattern/tables_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

const numPatternFeatures = 16
const maxPatternSquares = 10

type coord struct{ file, rank int }

// patternCoords lists, for each of the 16 patterns, the squares it covers:
// four corner 2x5 blocks, four edge-plus-two-X-squares strips, two main
// diagonals, four length-7 diagonals and two length-6 diagonals, matching
// the classic Logistello/Edax pattern atlas without reproducing any one
// engine's exact square list.
func patternCoords() [numPatternFeatures][]coord {
	var p [numPatternFeatures][]coord

	p[0] = []coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}
	p[1] = []coord{{7, 0}, {6, 0}, {5, 0}, {4, 0}, {3, 0}, {7, 1}, {6, 1}, {5, 1}, {4, 1}, {3, 1}}
	p[2] = []coord{{0, 7}, {1, 7}, {2, 7}, {3, 7}, {4, 7}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}}
	p[3] = []coord{{7, 7}, {6, 7}, {5, 7}, {4, 7}, {3, 7}, {7, 6}, {6, 6}, {5, 6}, {4, 6}, {3, 6}}

	p[4] = []coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {1, 1}, {6, 1}}
	p[5] = []coord{{0, 7}, {1, 7}, {2, 7}, {3, 7}, {4, 7}, {5, 7}, {6, 7}, {7, 7}, {1, 6}, {6, 6}}
	p[6] = []coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {1, 1}, {1, 6}}
	p[7] = []coord{{7, 0}, {7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5}, {7, 6}, {7, 7}, {6, 1}, {6, 6}}

	p[8] = diagMain(0)
	p[9] = diagAnti(7)

	p[10] = diagMain(1)
	p[11] = diagMain(-1)
	p[12] = diagAnti(6)
	p[13] = diagAnti(8)

	p[14] = diagMain(2)
	p[15] = diagAnti(5)

	return p
}

func diagMain(offset int) []coord {
	var cs []coord
	for file := 0; file < 8; file++ {
		rank := file - offset
		if rank >= 0 && rank < 8 {
			cs = append(cs, coord{file, rank})
		}
	}
	return cs
}

func diagAnti(sum int) []coord {
	var cs []coord
	for file := 0; file < 8; file++ {
		rank := sum - file
		if rank >= 0 && rank < 8 {
			cs = append(cs, coord{file, rank})
		}
	}
	return cs
}

func main() {
	coords := patternCoords()

	pow3 := make([]uint32, maxPatternSquares+1)
	pow3[0] = 1
	for i := 1; i <= maxPatternSquares; i++ {
		pow3[i] = pow3[i-1] * 3
	}

	squares := make([][]board.Square, numPatternFeatures)
	masks := make([]board.Bitboard, numPatternFeatures)
	patternPos := make([][64]int8, numPatternFeatures)
	offsets := make([]uint32, numPatternFeatures)
	var total uint32

	for p := 0; p < numPatternFeatures; p++ {
		for sq := 0; sq < 64; sq++ {
			patternPos[p][sq] = -1
		}
		sqs := make([]board.Square, len(coords[p]))
		var mask board.Bitboard
		for i, c := range coords[p] {
			sq := board.NewSquare(c.file, c.rank)
			sqs[i] = sq
			patternPos[p][sq] = int8(i)
			mask |= sq.Bitboard()
		}
		squares[p] = sqs
		masks[p] = mask
		offsets[p] = total
		total += pow3[len(sqs)]
	}

	w := os.Stdout
	fmt.Fprintln(w, "// Code generated by internal/pattern/gen. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package pattern")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `import "github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"`)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// PatternSquares holds the ordered square list for each pattern.")
	fmt.Fprintf(w, "var PatternSquares = [%d][]board.Square{\n", numPatternFeatures)
	for p := 0; p < numPatternFeatures; p++ {
		fmt.Fprintf(w, "\t{")
		for i, sq := range squares[p] {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", sq)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// PatternSize[p] is len(PatternSquares[p]).")
	fmt.Fprintf(w, "var PatternSize = [%d]int{", numPatternFeatures)
	for p := 0; p < numPatternFeatures; p++ {
		if p > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%d", len(squares[p]))
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// PatternMask[p] is the OR of the pattern's squares, for fast")
	fmt.Fprintln(w, "// intersection with a flip bitboard during incremental updates.")
	fmt.Fprintf(w, "var PatternMask = [%d]board.Bitboard{", numPatternFeatures)
	for p := 0; p < numPatternFeatures; p++ {
		if p > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "0x%016x", uint64(masks[p]))
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// patternPos[p][sq] is the zero-based position of sq within pattern p,")
	fmt.Fprintln(w, "// or -1 if sq does not belong to it.")
	fmt.Fprintf(w, "var patternPos = [%d][64]int8{\n", numPatternFeatures)
	for p := 0; p < numPatternFeatures; p++ {
		fmt.Fprint(w, "\t{")
		for sq := 0; sq < 64; sq++ {
			if sq > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", patternPos[p][sq])
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// FeatureOffsets[p] is the cumulative base index of pattern p within the")
	fmt.Fprintln(w, "// flat input-feature space shared by all patterns.")
	fmt.Fprintf(w, "var FeatureOffsets = [%d]uint32{", numPatternFeatures)
	for p := 0; p < numPatternFeatures; p++ {
		if p > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%d", offsets[p])
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "// InputFeatureDims is the total size of the flat input-feature space.")
	fmt.Fprintf(w, "const InputFeatureDims = %d\n", total)
}
