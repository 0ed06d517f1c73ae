package index

import (
	"github.com/google/btree"

	"github.com/leengari/minisql/internal/domain/value"
)

const btreeDegree = 32

// OrderedIndex keeps buckets sorted by key in a B-tree and answers range queries
type OrderedIndex struct {
	column string
	tree   *btree.BTreeG[*Bucket]
}

func NewOrdered(column string) *OrderedIndex {
	return &OrderedIndex{
		column: column,
		tree: btree.NewG(btreeDegree, func(a, b *Bucket) bool {
			return a.Key.Less(b.Key)
		}),
	}
}

func (o *OrderedIndex) Kind() Kind        { return KindOrdered }
func (o *OrderedIndex) Column() string    { return o.column }
func (o *OrderedIndex) DistinctKeys() int { return o.tree.Len() }

func (o *OrderedIndex) Add(key value.Value, pos int) {
	if b, ok := o.tree.Get(&Bucket{Key: key}); ok {
		b.Positions = append(b.Positions, pos)
		return
	}
	o.tree.ReplaceOrInsert(&Bucket{Key: key, Positions: []int{pos}})
}

func (o *OrderedIndex) Lookup(key value.Value) []int {
	if b, ok := o.tree.Get(&Bucket{Key: key}); ok {
		return b.Positions
	}
	return nil
}

// LessThan concatenates the buckets of all keys strictly below key, in ascending key order
func (o *OrderedIndex) LessThan(key value.Value) []int {
	var out []int
	o.tree.AscendLessThan(&Bucket{Key: key}, func(b *Bucket) bool {
		out = append(out, b.Positions...)
		return true
	})
	return out
}

// GreaterThan concatenates the buckets of all keys strictly above key, in ascending key order
func (o *OrderedIndex) GreaterThan(key value.Value) []int {
	var out []int
	o.tree.AscendGreaterOrEqual(&Bucket{Key: key}, func(b *Bucket) bool {
		if b.Key.Equal(key) {
			return true
		}
		out = append(out, b.Positions...)
		return true
	})
	return out
}

// Buckets returns every bucket in ascending key order
func (o *OrderedIndex) Buckets() []Bucket {
	out := make([]Bucket, 0, o.tree.Len())
	o.tree.Ascend(func(b *Bucket) bool {
		out = append(out, *b)
		return true
	})
	return out
}
