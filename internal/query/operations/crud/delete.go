package crud

import (
	"log/slog"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/planner/predicate"
	"github.com/leengari/minisql/internal/query/indexing"
)

// Delete removes rows matching the condition.
// Returns number of rows deleted.
// Candidates are always found by a linear scan, never through an index.
// Rebuilds all indexes after deletion since row positions change.
func Delete(table *schema.Table, cond predicate.Condition) (int, error) {
	// Acquire write lock for the entire operation
	table.Lock()
	defer table.Unlock()

	pred, err := predicate.Build(table, cond)
	if err != nil {
		return 0, err
	}

	deleted := 0
	newRows := make([]value.Row, 0, len(table.Rows))

	// Filter out rows that match the predicate
	for _, row := range table.Rows {
		if pred.Matches(row) {
			deleted++
			continue
		}
		newRows = append(newRows, row)
	}

	if deleted == 0 {
		return 0, nil
	}

	table.Rows = newRows

	// Stored positions are now stale; rebuild before releasing the lock
	indexing.RebuildUnsafe(table)

	slog.Debug("rows deleted",
		slog.String("table", table.Name),
		slog.Int("deleted", deleted),
		slog.Int("remaining", len(table.Rows)),
	)

	return deleted, nil
}
