package join

import (
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/planner"
)

// Pair is one match: a row position in each input table
type Pair struct {
	Left  int
	Right int
}

// Result holds the projected output of an equi-join.
// Rows[i] is built from Pairs[i]; pairs are ordered by ascending left
// position, then ascending right position.
type Result struct {
	Columns  []string
	Rows     []value.Row
	Pairs    []Pair
	Strategy planner.ProbeStrategy
}

// Count returns the number of joined rows
func (r *Result) Count() int {
	return len(r.Rows)
}
