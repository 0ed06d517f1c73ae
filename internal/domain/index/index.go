// Package index holds the two per-column index structures. Both map a Value
// to the ascending list of row positions holding it. Positions are weak
// back-references into a table's row slice: they are only valid until the
// next delete, after which the owner must rebuild the index.
package index

import (
	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/value"
)

// Kind names an index structure as written in GENERATE
type Kind string

const (
	KindHash    Kind = "hash"
	KindOrdered Kind = "bst"
)

// ParseKind validates an index kind token
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindHash, KindOrdered:
		return Kind(s), nil
	default:
		return "", &errors.IndexKindError{Kind: s}
	}
}

// Bucket is one distinct key and the rows that hold it
type Bucket struct {
	Key       value.Value
	Positions []int
}

// Index is the behaviour shared by the equality and the ordered index.
// Slices returned by Lookup alias index storage and must not be modified.
type Index interface {
	Kind() Kind
	Column() string
	Add(key value.Value, pos int)
	Lookup(key value.Value) []int
	DistinctKeys() int
	Buckets() []Bucket
}

// New returns an empty index of the given kind
func New(kind Kind, column string) Index {
	if kind == KindOrdered {
		return NewOrdered(column)
	}
	return NewHash(column)
}
