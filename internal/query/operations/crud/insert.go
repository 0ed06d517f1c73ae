package crud

import (
	"log/slog"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/query/indexing"
)

// InsertResult reports which positions an insert appended
type InsertResult struct {
	Inserted int
	First    int // position of the first appended row
	Last     int // position of the last appended row, First-1 when nothing was appended
}

// Insert parses and appends rows one at a time.
// A row that fails validation stops the insert, but rows appended before it
// stay in the table: there is no batch atomicity. Existing non-empty indexes
// are extended with whatever was appended, on success and on failure.
func Insert(table *schema.Table, rows [][]string) (InsertResult, error) {
	// Acquire write lock for the entire operation
	table.Lock()
	defer table.Unlock()

	start := len(table.Rows)
	res := InsertResult{First: start, Last: start - 1}

	var insertErr error
	for i, tokens := range rows {
		row, err := table.ParseRow(tokens, i+1)
		if err != nil {
			insertErr = err
			break
		}
		pos, err := table.AppendUnsafe(row)
		if err != nil {
			insertErr = err
			break
		}
		res.Inserted++
		res.Last = pos
	}

	if res.Inserted > 0 {
		indexing.ExtendUnsafe(table, start)
	}

	if insertErr != nil {
		slog.Debug("insert stopped early",
			slog.String("table", table.Name),
			slog.Int("committed", res.Inserted),
			slog.Int("requested", len(rows)),
			slog.Any("error", insertErr),
		)
		return res, insertErr
	}

	return res, nil
}
