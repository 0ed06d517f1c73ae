package executor

import (
	"fmt"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/planner/predicate"
	"github.com/leengari/minisql/internal/query/operations"
	"github.com/leengari/minisql/internal/query/operations/projection"
)

// executePrint handles PRINT ... ALL and PRINT ... WHERE
func executePrint(stmt *ast.PrintStatement, db *schema.Database) (*Result, error) {
	table, err := db.GetTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	res, err := operations.Select(table, projection.NewProjectionWithColumns(stmt.Columns...), toCondition(stmt.Where))
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns:  res.Columns,
		Rows:     res.Rows,
		Tabular:  true,
		Affected: res.Count(),
		Message:  fmt.Sprintf("Printed %d matching rows from %s", res.Count(), stmt.TableName),
	}, nil
}

// toCondition converts a parsed WHERE clause; nil stays nil
func toCondition(c *ast.Condition) *predicate.Condition {
	if c == nil {
		return nil
	}
	return &predicate.Condition{Column: c.Column, Op: c.Operator, Literal: c.Value}
}
