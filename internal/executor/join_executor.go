package executor

import (
	"fmt"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/query/operations/join"
	"github.com/leengari/minisql/internal/query/operations/projection"
)

// executeJoin handles JOIN. Both tables are resolved before any column.
func executeJoin(stmt *ast.JoinStatement, db *schema.Database) (*Result, error) {
	left, err := db.GetTable(stmt.LeftTable)
	if err != nil {
		return nil, err
	}
	right, err := db.GetTable(stmt.RightTable)
	if err != nil {
		return nil, err
	}

	proj := &projection.Projection{}
	for _, c := range stmt.Columns {
		proj.AddColumn(c.Name, c.Side)
	}

	res, err := join.Execute(left, right, stmt.LeftColumn, stmt.RightColumn, proj)
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns:  res.Columns,
		Rows:     res.Rows,
		Tabular:  true,
		Affected: res.Count(),
		Message:  fmt.Sprintf("Printed %d rows from joining %s to %s", res.Count(), stmt.LeftTable, stmt.RightTable),
	}, nil
}
