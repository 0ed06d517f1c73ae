package operations

import (
	"log/slog"

	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/planner"
	"github.com/leengari/minisql/internal/planner/predicate"
	"github.com/leengari/minisql/internal/query/operations/projection"
)

// SelectResult holds the projected matches of a filtered read
type SelectResult struct {
	Columns   []string
	Rows      []value.Row
	Positions []int // row position of each match, in output order
	Path      planner.AccessPath
}

// Count returns the number of matching rows
func (r *SelectResult) Count() int {
	return len(r.Rows)
}

// Select returns the rows matching cond, projected to proj.
// A nil cond selects every row in position order; a nil proj keeps every column.
//
// The filter is validated before the projection: operator, then filter
// column, then literal, then each projected column.
func Select(table *schema.Table, proj *projection.Projection, cond *predicate.Condition) (*SelectResult, error) {
	table.RLock()
	defer table.RUnlock()

	var pred *predicate.Predicate
	if cond != nil {
		p, err := predicate.Build(table, *cond)
		if err != nil {
			return nil, err
		}
		pred = p
	}

	if proj == nil {
		proj = projection.NewProjectionWithColumns(table.Schema.Names()...)
	}
	cols, err := projection.Resolve(table, proj)
	if err != nil {
		return nil, err
	}

	res := &SelectResult{Columns: proj.Names(), Path: planner.PathFullScan}
	if pred == nil {
		res.Positions = make([]int, len(table.Rows))
		for i := range table.Rows {
			res.Positions[i] = i
		}
	} else {
		res.Positions, res.Path = matchPositions(table, pred)
	}

	res.Rows = make([]value.Row, len(res.Positions))
	for i, pos := range res.Positions {
		res.Rows[i] = projection.ProjectRow(table.Rows[pos], cols)
	}

	slog.Debug("select completed",
		slog.String("table", table.Name),
		slog.String("path", res.Path.String()),
		slog.Int("matches", len(res.Rows)),
	)
	return res, nil
}

// matchPositions resolves the predicate through the chosen access path.
// The returned slice is always a fresh copy, never index storage.
func matchPositions(table *schema.Table, pred *predicate.Predicate) ([]int, planner.AccessPath) {
	path, idx := planner.ChooseAccessPath(table, pred)

	switch path {
	case planner.PathHashLookup, planner.PathOrderedLookup:
		return append([]int(nil), idx.Lookup(pred.Operand)...), path
	case planner.PathOrderedRange:
		ordered := idx.(*index.OrderedIndex)
		if pred.Op == predicate.OpLess {
			return ordered.LessThan(pred.Operand), path
		}
		return ordered.GreaterThan(pred.Operand), path
	}

	var positions []int
	for pos, row := range table.Rows {
		if pred.Matches(row) {
			positions = append(positions, pos)
		}
	}
	return positions, path
}
