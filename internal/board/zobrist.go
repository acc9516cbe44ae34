package board

// Zobrist hash keys for position hashing.
// Uses a PRNG with a fixed seed so hashes are reproducible across runs,
// which matters for the transposition table and for the opening/endgame
// caches that are persisted between invocations of the engine.
var (
	zobristDisc     [2][64]uint64 // [Disc-1][Square] for DiscBlack/DiscWhite
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is a simple PRNG used only for generating reproducible Zobrist keys.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// next returns the next pseudo-random value using the xorshift64* algorithm.
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for d := 0; d < 2; d++ {
		for sq := 0; sq < 64; sq++ {
			zobristDisc[d][sq] = rng.next()
		}
	}

	zobristSideToMove = rng.next()
}

// ZobristDisc returns the Zobrist key for a disc of the given color on sq.
// disc must be DiscBlack or DiscWhite.
func ZobristDisc(disc Disc, sq Square) uint64 {
	return zobristDisc[disc-1][sq]
}

// ZobristSideToMove returns the Zobrist key XORed in when it is White's turn.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
