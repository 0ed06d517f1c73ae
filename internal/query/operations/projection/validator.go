package projection

import (
	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/schema"
)

// Source locates one projected column: which join side and which column position
type Source struct {
	Side   int
	ColPos int
}

// Resolve checks every column exists in the table and returns their positions
func Resolve(table *schema.Table, proj *Projection) ([]int, error) {
	if proj == nil {
		return nil, nil
	}
	return table.ResolveColumns(proj.Names())
}

// ResolveJoin resolves each column against the table its side designates
func ResolveJoin(left, right *schema.Table, proj *Projection) ([]Source, error) {
	if proj == nil {
		return nil, nil
	}

	sources := make([]Source, len(proj.Columns))
	for i, ref := range proj.Columns {
		var table *schema.Table
		switch ref.Side {
		case 1:
			table = left
		case 2:
			table = right
		default:
			return nil, errors.NewMalformed("Table indicator must be 1 or 2")
		}

		pos, err := table.ResolveColumn(ref.Column)
		if err != nil {
			return nil, err
		}
		sources[i] = Source{Side: ref.Side, ColPos: pos}
	}
	return sources, nil
}
