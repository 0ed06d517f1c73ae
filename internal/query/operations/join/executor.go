package join

import (
	"encoding/binary"
	"log/slog"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/planner"
	"github.com/leengari/minisql/internal/query/operations/projection"
)

// bloomFalsePositiveRate for the scan prefilter built over the right table
const bloomFalsePositiveRate = 0.01

// Execute performs an inner equi-join of leftTable.leftColumn = rightTable.rightColumn.
//
// The left table is always read in position order and its indexes are
// ignored. Each left row probes the right table through the right join
// column's index when one exists, or through a linear scan otherwise.
// The result is the same whichever path is taken.
func Execute(
	leftTable *schema.Table,
	rightTable *schema.Table,
	leftColumn string,
	rightColumn string,
	proj *projection.Projection,
) (*Result, error) {
	// Acquire read locks on both tables; a self-join locks once
	leftTable.RLock()
	defer leftTable.RUnlock()
	if rightTable != leftTable {
		rightTable.RLock()
		defer rightTable.RUnlock()
	}

	leftPos, rightPos, err := validateJoinCondition(leftTable, rightTable, leftColumn, rightColumn)
	if err != nil {
		return nil, err
	}

	sources, err := projection.ResolveJoin(leftTable, rightTable, proj)
	if err != nil {
		return nil, err
	}

	strategy, idx := planner.ChooseProbe(rightTable, rightColumn)
	slog.Debug("Starting JOIN",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.String("left_column", leftColumn),
		slog.String("right_column", rightColumn),
		slog.String("probe", strategy.String()),
	)

	var pairs []Pair
	if idx != nil {
		pairs = probeIndex(leftTable, leftPos, idx)
	} else {
		pairs = probeScan(leftTable, rightTable, leftPos, rightPos)
	}

	res := &Result{
		Columns:  proj.Names(),
		Rows:     make([]value.Row, len(pairs)),
		Pairs:    pairs,
		Strategy: strategy,
	}
	for i, p := range pairs {
		res.Rows[i] = projection.ProjectJoinedRow(leftTable.Rows[p.Left], rightTable.Rows[p.Right], sources)
	}

	slog.Debug("JOIN completed",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.Int("result_rows", len(res.Rows)),
	)
	return res, nil
}

// validateJoinCondition resolves both join columns and checks their kinds agree
func validateJoinCondition(leftTable, rightTable *schema.Table, leftColumn, rightColumn string) (int, int, error) {
	leftPos, err := leftTable.ResolveColumn(leftColumn)
	if err != nil {
		return 0, 0, err
	}
	rightPos, err := rightTable.ResolveColumn(rightColumn)
	if err != nil {
		return 0, 0, err
	}

	leftKind := leftTable.Schema.Columns[leftPos].Kind
	rightKind := rightTable.Schema.Columns[rightPos].Kind
	if leftKind != rightKind {
		return 0, 0, &errors.TypeMismatchError{
			LeftTable:   leftTable.Name,
			LeftColumn:  leftColumn,
			LeftKind:    leftKind.String(),
			RightTable:  rightTable.Name,
			RightColumn: rightColumn,
			RightKind:   rightKind.String(),
		}
	}
	return leftPos, rightPos, nil
}

// probeIndex looks each left key up in the right table's index.
// Bucket positions are already ascending.
func probeIndex(leftTable *schema.Table, leftPos int, idx index.Index) []Pair {
	var pairs []Pair
	for l, row := range leftTable.Rows {
		for _, r := range idx.Lookup(row[leftPos]) {
			pairs = append(pairs, Pair{Left: l, Right: r})
		}
	}
	return pairs
}

// probeScan compares each left key against every right row. A bloom filter
// over the right join column lets keys with no possible match skip the scan.
func probeScan(leftTable, rightTable *schema.Table, leftPos, rightPos int) []Pair {
	filter := bloom.NewWithEstimates(uint(max(len(rightTable.Rows), 1)), bloomFalsePositiveRate)
	for _, row := range rightTable.Rows {
		filter.Add(hashKey(row[rightPos]))
	}

	var pairs []Pair
	skipped := 0
	for l, leftRow := range leftTable.Rows {
		key := leftRow[leftPos]
		if !filter.Test(hashKey(key)) {
			skipped++
			continue
		}
		for r, rightRow := range rightTable.Rows {
			if key.Equal(rightRow[rightPos]) {
				pairs = append(pairs, Pair{Left: l, Right: r})
			}
		}
	}

	slog.Debug("JOIN scan prefilter",
		slog.String("right_table", rightTable.Name),
		slog.Int("skipped_left_rows", skipped),
	)
	return pairs
}

// hashKey encodes a value's hash as bloom filter input. Equal values hash
// alike, so a negative test is a definite miss.
func hashKey(v value.Value) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v.Hash())
	return buf[:]
}
