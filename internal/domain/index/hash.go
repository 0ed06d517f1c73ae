package index

import "github.com/leengari/minisql/internal/domain/value"

// HashIndex is the equality index. Keys are grouped by their xxhash digest;
// each digest chains the buckets whose keys collide on it.
type HashIndex struct {
	column  string
	buckets map[uint64][]*Bucket
	keys    int
}

func NewHash(column string) *HashIndex {
	return &HashIndex{
		column:  column,
		buckets: make(map[uint64][]*Bucket),
	}
}

func (h *HashIndex) Kind() Kind        { return KindHash }
func (h *HashIndex) Column() string    { return h.column }
func (h *HashIndex) DistinctKeys() int { return h.keys }

func (h *HashIndex) Add(key value.Value, pos int) {
	sum := key.Hash()
	for _, b := range h.buckets[sum] {
		if b.Key.Equal(key) {
			b.Positions = append(b.Positions, pos)
			return
		}
	}
	h.buckets[sum] = append(h.buckets[sum], &Bucket{Key: key, Positions: []int{pos}})
	h.keys++
}

func (h *HashIndex) Lookup(key value.Value) []int {
	for _, b := range h.buckets[key.Hash()] {
		if b.Key.Equal(key) {
			return b.Positions
		}
	}
	return nil
}

// Buckets returns every bucket in unspecified order
func (h *HashIndex) Buckets() []Bucket {
	out := make([]Bucket, 0, h.keys)
	for _, chain := range h.buckets {
		for _, b := range chain {
			out = append(out, *b)
		}
	}
	return out
}
