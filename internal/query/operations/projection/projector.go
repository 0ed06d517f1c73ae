package projection

import "github.com/leengari/minisql/internal/domain/value"

// ProjectRow returns a new row holding only the columns at positions, in order
func ProjectRow(row value.Row, positions []int) value.Row {
	projected := make(value.Row, len(positions))
	for i, pos := range positions {
		projected[i] = row[pos]
	}
	return projected
}

// ProjectJoinedRow builds an output row from one row of each join input
func ProjectJoinedRow(left, right value.Row, sources []Source) value.Row {
	projected := make(value.Row, len(sources))
	for i, src := range sources {
		if src.Side == 1 {
			projected[i] = left[src.ColPos]
		} else {
			projected[i] = right[src.ColPos]
		}
	}
	return projected
}
