package indexing

import (
	"log/slog"

	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/schema"
)

// Generate builds an index of the requested kind on a column, replacing any
// index of either kind already on that column. Returns the new index.
func Generate(table *schema.Table, column, kind string) (index.Index, error) {
	// Acquire write lock for index building
	table.Lock()
	defer table.Unlock()

	colPos, err := table.ResolveColumn(column)
	if err != nil {
		return nil, err
	}
	k, err := index.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	delete(table.Indexes, column)
	idx := build(table, colPos, k, column)
	table.Indexes[column] = idx

	slog.Debug("index built",
		slog.String("table", table.Name),
		slog.String("column", column),
		slog.String("kind", string(k)),
		slog.Int("distinct_keys", idx.DistinctKeys()),
		slog.Int("rows", len(table.Rows)))

	return idx, nil
}

// RebuildUnsafe discards and rebuilds every non-empty index on the table from
// the current row order. Positions stored before a delete are stale, so this
// must run in the same critical section as the delete. An empty index is left
// empty.
// IMPORTANT: Must be called while holding write lock!
func RebuildUnsafe(table *schema.Table) {
	for column, old := range table.Indexes {
		colPos, ok := table.Schema.ColumnIndex(column)
		if !ok {
			delete(table.Indexes, column)
			continue
		}
		if old.DistinctKeys() == 0 {
			continue
		}
		table.Indexes[column] = build(table, colPos, old.Kind(), column)
	}

	if len(table.Indexes) > 0 {
		slog.Debug("indexes rebuilt",
			slog.String("table", table.Name),
			slog.Int("indexes", len(table.Indexes)),
			slog.Int("rows", len(table.Rows)))
	}
}

// ExtendUnsafe adds rows [from, len(Rows)) to every non-empty index on the
// table. Appending never moves existing rows, so existing buckets stay valid.
// An empty index is never extended; the planner treats it as absent.
// IMPORTANT: Must be called while holding write lock!
func ExtendUnsafe(table *schema.Table, from int) {
	for column, idx := range table.Indexes {
		colPos, ok := table.Schema.ColumnIndex(column)
		if !ok || idx.DistinctKeys() == 0 {
			continue
		}
		for pos := from; pos < len(table.Rows); pos++ {
			idx.Add(table.Rows[pos][colPos], pos)
		}
	}
}

// build scans the rows once; bucket order is ascending row position
func build(table *schema.Table, colPos int, kind index.Kind, column string) index.Index {
	idx := index.New(kind, column)
	for pos, row := range table.Rows {
		idx.Add(row[colPos], pos)
	}
	return idx
}
