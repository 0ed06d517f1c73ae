package executor

import (
	"fmt"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/query/operations/crud"
)

// executeDelete handles DELETE FROM ... WHERE
func executeDelete(stmt *ast.DeleteStatement, db *schema.Database) (*Result, error) {
	table, err := db.GetTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	deleted, err := crud.Delete(table, *toCondition(stmt.Where))
	if err != nil {
		return nil, err
	}

	return &Result{
		Affected: deleted,
		Message:  fmt.Sprintf("Deleted %d rows from %s", deleted, stmt.TableName),
	}, nil
}
