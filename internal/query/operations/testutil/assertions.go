package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertRows compares rendered rows (cells joined by a single space)
func AssertRows(t *testing.T, rows []value.Row, expected []string, context string) {
	t.Helper()
	got := RenderRows(rows)
	if len(got) != len(expected) {
		t.Errorf("%s: expected rows %q, got %q", context, expected, got)
		return
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("%s: row %d: expected %q, got %q", context, i, expected[i], got[i])
		}
	}
}

// RenderRows renders each row as its cells joined by a single space
func RenderRows(rows []value.Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		out[i] = strings.Join(cells, " ")
	}
	return out
}

// AssertIndexesExact checks that every non-empty index on the table covers
// each row position exactly once and that each bucket holds only rows with its key
func AssertIndexesExact(t *testing.T, table *schema.Table) {
	t.Helper()
	table.RLock()
	defer table.RUnlock()

	for column, idx := range table.Indexes {
		colPos, ok := table.Schema.ColumnIndex(column)
		if !ok {
			t.Errorf("index on unknown column %s", column)
			continue
		}
		if idx.DistinctKeys() == 0 {
			continue
		}

		var all []int
		for _, b := range idx.Buckets() {
			for _, pos := range b.Positions {
				if pos < 0 || pos >= len(table.Rows) {
					t.Errorf("%s index on %s: stale position %d (rows=%d)", idx.Kind(), column, pos, len(table.Rows))
					continue
				}
				if !table.Rows[pos][colPos].Equal(b.Key) {
					t.Errorf("%s index on %s: row %d holds %v, bucket key %v", idx.Kind(), column, pos, table.Rows[pos][colPos], b.Key)
				}
			}
			if !sort.IntsAreSorted(b.Positions) {
				t.Errorf("%s index on %s: bucket %v not ascending: %v", idx.Kind(), column, b.Key, b.Positions)
			}
			all = append(all, b.Positions...)
		}

		sort.Ints(all)
		if len(all) != len(table.Rows) {
			t.Errorf("%s index on %s: covers %d positions, table has %d rows", idx.Kind(), column, len(all), len(table.Rows))
			continue
		}
		for i, pos := range all {
			if pos != i {
				t.Errorf("%s index on %s: positions %v are not exactly 0..%d", idx.Kind(), column, all, len(table.Rows)-1)
				break
			}
		}
	}
}

// AssertRowShapes checks every row has one value per column of the column's kind
func AssertRowShapes(t *testing.T, table *schema.Table) {
	t.Helper()
	table.RLock()
	defer table.RUnlock()

	for pos, row := range table.Rows {
		if len(row) != len(table.Schema.Columns) {
			t.Errorf("row %d: %d values for %d columns", pos, len(row), len(table.Schema.Columns))
			continue
		}
		for i, col := range table.Schema.Columns {
			if row[i].Kind() != col.Kind {
				t.Errorf("row %d column %s: kind %s, want %s", pos, col.Name, row[i].Kind(), col.Kind)
			}
		}
	}
}
