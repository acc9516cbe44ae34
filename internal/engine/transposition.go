package engine

import (
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/board"
)

// Bound indicates which side of a score window a stored search result is
// known to be exact about.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // Failed high (beta cutoff): true score >= Score
	BoundUpper       // Failed low: true score <= Score
)

// ttEntry is one stored search result.
type ttEntry struct {
	key         uint32
	bestMove    board.Square
	score       int16
	depth       int8
	selectivity uint8
	bound       Bound
	age         uint8
}

const bucketSize = 2

// ttBucket groups bucketSize entries under a single spin lock: two
// candidate replacement slots per hashed index let a deep, still-relevant
// entry and a fresh shallow entry coexist instead of fighting over one
// slot, the way a single-slot table cannot.
type ttBucket struct {
	lock    spinLock
	entries [bucketSize]ttEntry
}

// TranspositionTable is a fixed-size, concurrently probed table of 2-entry
// buckets: power-of-2 sizing, Key/Depth/Flag/Age fields, age-based
// replacement, adapted from a single-slot design protected only by the
// caller's discipline to a 2-way bucketed design with a real per-bucket
// spinLock (see spinlock.go), since Reversi's worker pool probes/stores the
// table from many goroutines concurrently with no higher-level serialization.
type TranspositionTable struct {
	buckets []ttBucket
	mask    uint64
	age     uint8
}

// NewTranspositionTable creates a table sized in megabytes, rounded down to
// a power-of-2 bucket count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	bucketBytes := uint64(bucketSize) * 16 // approx bytes per ttEntry
	numBuckets := (uint64(sizeMB) * 1024 * 1024) / bucketBytes
	numBuckets = roundDownToPowerOf2(numBuckets)
	if numBuckets == 0 {
		numBuckets = 1
	}

	return &TranspositionTable{
		buckets: make([]ttBucket, numBuckets),
		mask:    numBuckets - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// NewSearch bumps the table's generation counter so stale entries from a
// previous search become preferred replacement targets.
func (tt *TranspositionTable) NewSearch() {
	tt.age++
}

// Clear empties every bucket.
func (tt *TranspositionTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i] = ttBucket{}
	}
	tt.age = 0
}

// HashFull returns the permille (parts per thousand) of sampled entries that
// hold a current-generation result, the standard progress indicator reported
// alongside search depth and score, adapted from TranspositionTable.HashFull
// to sample bucket slots instead of a flat entry array.
func (tt *TranspositionTable) HashFull() int {
	sampleBuckets := 1000
	if sampleBuckets > len(tt.buckets) {
		sampleBuckets = len(tt.buckets)
	}
	if sampleBuckets == 0 {
		return 0
	}

	used, total := 0, 0
	for i := 0; i < sampleBuckets; i++ {
		b := &tt.buckets[i]
		b.lock.Lock()
		for _, e := range b.entries {
			total++
			if e.depth > 0 && e.age == tt.age {
				used++
			}
		}
		b.lock.Unlock()
	}
	return (used * 1000) / total
}

// Probe looks up hash, returning the stored entry for any selectivity at
// least as exact as minSelectivity.
func (tt *TranspositionTable) Probe(hash uint64, minSelectivity int) (ttEntry, bool) {
	b := &tt.buckets[hash&tt.mask]
	key := uint32(hash >> 32)

	b.lock.Lock()
	defer b.lock.Unlock()

	for _, e := range b.entries {
		if e.key == key && e.depth > 0 && int(e.selectivity) >= minSelectivity {
			return e, true
		}
	}
	return ttEntry{}, false
}

// Store records a search result, replacing whichever bucket slot is from an
// older generation or holds a shallower result.
func (tt *TranspositionTable) Store(hash uint64, depth int, selectivity int, score Score, bound Bound, bestMove board.Square) {
	b := &tt.buckets[hash&tt.mask]
	key := uint32(hash >> 32)

	b.lock.Lock()
	defer b.lock.Unlock()

	victim := 0
	for i := range b.entries {
		e := &b.entries[i]
		if e.key == key {
			victim = i
			break
		}
		if e.age != tt.age || e.depth < b.entries[victim].depth {
			victim = i
		}
	}

	b.entries[victim] = ttEntry{
		key:         key,
		bestMove:    bestMove,
		score:       int16(score),
		depth:       int8(depth),
		selectivity: uint8(selectivity),
		bound:       bound,
		age:         tt.age,
	}
}
