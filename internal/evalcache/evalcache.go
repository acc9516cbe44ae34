// Package evalcache caches neural network evaluation results keyed by
// position hash, the way internal/engine's pawn hash table caches pawn
// structure scores, but made safe for concurrent lock-free access since
// every search worker shares one instance.
package evalcache

import "sync/atomic"

const (
	keyMask   = 0xFFFFFFFFFFFF // 48 bits
	scoreMask = 0xFFFF         // 16 bits
	scoreBits = 16
)

// EvalCache is a lock-free hash table of (position-hash, score) pairs. Each
// slot packs a 48-bit truncated key and a 16-bit two's-complement score into
// a single atomic word; a torn read that lands between two unrelated writes
// is simply treated as a miss because the decoded key will not match.
type EvalCache struct {
	table []atomic.Uint64
	mask  uint64
}

// New creates a cache with 2^sizeLog2 entries.
func New(sizeLog2 uint) *EvalCache {
	size := uint64(1) << sizeLog2
	return &EvalCache{
		table: make([]atomic.Uint64, size),
		mask:  size - 1,
	}
}

func (c *EvalCache) index(key uint64) uint64 {
	// Multiplicative-hash-like index: rotating the key scrambles the low
	// bits the mask selects on, since position hashes are not otherwise
	// guaranteed to be well mixed in their low bits.
	return bitsRotateLeft(key, scoreBits) & c.mask
}

func bitsRotateLeft(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

func pack(key uint64, score int32) uint64 {
	return ((key & keyMask) << scoreBits) | (uint64(score) & scoreMask)
}

func unpack(entry uint64) (key uint64, score int32) {
	key = (entry >> scoreBits) & keyMask
	score = int32(int16(entry & scoreMask))
	return key, score
}

// Store records score for key, unconditionally overwriting whatever
// previously occupied that slot (there is no depth/age replacement policy:
// the cache only ever stores leaf evaluations, which are all equally
// "deep").
func (c *EvalCache) Store(key uint64, score int32) {
	idx := c.index(key)
	c.table[idx].Store(pack(key, score))
}

// Probe returns the cached score for key and true if present, or (0, false)
// on a miss or a key collision.
func (c *EvalCache) Probe(key uint64) (int32, bool) {
	idx := c.index(key)
	entry := c.table[idx].Load()
	if entry == 0 {
		return 0, false
	}
	entryKey, score := unpack(entry)
	if entryKey != key&keyMask {
		return 0, false
	}
	return score, true
}

// Clear empties every slot.
func (c *EvalCache) Clear() {
	for i := range c.table {
		c.table[i].Store(0)
	}
}

// Len returns the number of slots in the cache.
func (c *EvalCache) Len() int {
	return len(c.table)
}
