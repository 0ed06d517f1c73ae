package planner

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/planner/predicate"
)

func newTable(t *testing.T) *schema.Table {
	t.Helper()
	s, err := schema.NewTableSchema("T", []schema.Column{
		{Name: "a", Kind: value.KindInteger},
		{Name: "b", Kind: value.KindInteger},
	})
	assert.NilError(t, err)
	table := schema.NewTable(s)
	table.Indexes["a"] = index.NewHash("a")
	table.Indexes["b"] = index.NewOrdered("b")
	table.Indexes["a"].Add(value.Int(1), 0)
	table.Indexes["b"].Add(value.Int(1), 0)
	return table
}

func TestChooseAccessPath(t *testing.T) {
	table := newTable(t)

	tests := []struct {
		column string
		op     predicate.Operator
		want   AccessPath
	}{
		{"a", predicate.OpEqual, PathHashLookup},
		{"a", predicate.OpLess, PathFullScan},
		{"a", predicate.OpGreater, PathFullScan},
		{"b", predicate.OpEqual, PathOrderedLookup},
		{"b", predicate.OpLess, PathOrderedRange},
		{"b", predicate.OpGreater, PathOrderedRange},
	}

	for _, tt := range tests {
		t.Run(tt.column+string(tt.op), func(t *testing.T) {
			pred := &predicate.Predicate{Column: tt.column, Op: tt.op, Operand: value.Int(1)}
			got, idx := ChooseAccessPath(table, pred)
			assert.Equal(t, got, tt.want, "got %s", got)
			assert.Equal(t, idx == nil, tt.want == PathFullScan)
		})
	}
}

func TestChooseProbe(t *testing.T) {
	table := newTable(t)

	s, _ := ChooseProbe(table, "a")
	assert.Equal(t, s, ProbeHash)

	s, _ = ChooseProbe(table, "b")
	assert.Equal(t, s, ProbeOrdered)

	delete(table.Indexes, "b")
	s, idx := ChooseProbe(table, "b")
	assert.Equal(t, s, ProbeScan)
	assert.Assert(t, idx == nil)
}

func TestEmptyIndexIsIgnored(t *testing.T) {
	table := newTable(t)
	table.Indexes["a"] = index.NewHash("a")
	table.Indexes["b"] = index.NewOrdered("b")

	for _, column := range []string{"a", "b"} {
		pred := &predicate.Predicate{Column: column, Op: predicate.OpEqual, Operand: value.Int(1)}
		path, idx := ChooseAccessPath(table, pred)
		assert.Equal(t, path, PathFullScan)
		assert.Assert(t, idx == nil)

		s, idx := ChooseProbe(table, column)
		assert.Equal(t, s, ProbeScan)
		assert.Assert(t, idx == nil)
	}
}
