package planner

import (
	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/planner/predicate"
)

// AccessPath is how the filter evaluator finds matching rows
type AccessPath int

const (
	PathFullScan      AccessPath = iota // linear scan in position order
	PathHashLookup                      // single bucket of an equality index
	PathOrderedLookup                   // single key of an ordered index
	PathOrderedRange                    // key range of an ordered index
)

func (p AccessPath) String() string {
	switch p {
	case PathHashLookup:
		return "hash_lookup"
	case PathOrderedLookup:
		return "ordered_lookup"
	case PathOrderedRange:
		return "ordered_range"
	default:
		return "full_scan"
	}
}

// ChooseAccessPath picks the access path for a predicate:
// an equality index answers only `=`; an ordered index answers all three
// operators; anything else, including an empty index, is a full scan.
// Must be called while holding at least a read lock on the table.
func ChooseAccessPath(table *schema.Table, pred *predicate.Predicate) (AccessPath, index.Index) {
	idx, ok := usable(table, pred.Column)
	if !ok {
		return PathFullScan, nil
	}

	switch idx.Kind() {
	case index.KindHash:
		if pred.Op == predicate.OpEqual {
			return PathHashLookup, idx
		}
	case index.KindOrdered:
		if pred.Op == predicate.OpEqual {
			return PathOrderedLookup, idx
		}
		return PathOrderedRange, idx
	}
	return PathFullScan, nil
}

// ProbeStrategy is how the join engine resolves matches in the probed table
type ProbeStrategy int

const (
	ProbeScan    ProbeStrategy = iota // linear scan, bloom-prefiltered
	ProbeHash                         // equality index bucket
	ProbeOrdered                      // ordered index bucket
)

func (s ProbeStrategy) String() string {
	switch s {
	case ProbeHash:
		return "hash_probe"
	case ProbeOrdered:
		return "ordered_probe"
	default:
		return "scan_probe"
	}
}

// ChooseProbe selects the probe for the inner table of a join. Only the inner
// table's index on the join column matters; the outer table is always read in
// position order. An empty index is never probed.
// Must be called while holding at least a read lock on the table.
func ChooseProbe(inner *schema.Table, column string) (ProbeStrategy, index.Index) {
	idx, ok := usable(inner, column)
	if !ok {
		return ProbeScan, nil
	}
	if idx.Kind() == index.KindHash {
		return ProbeHash, idx
	}
	return ProbeOrdered, idx
}

// usable returns the index on column if there is one holding any keys
func usable(table *schema.Table, column string) (index.Index, bool) {
	idx, ok := table.Indexes[column]
	if !ok || idx.DistinctKeys() == 0 {
		return nil, false
	}
	return idx, true
}
