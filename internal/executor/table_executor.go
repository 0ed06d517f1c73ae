package executor

import (
	"fmt"
	"strings"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/parser/ast"
)

// executeCreate handles CREATE. The name is checked before the column types.
func executeCreate(stmt *ast.CreateStatement, db *schema.Database) (*Result, error) {
	if _, err := db.GetTable(stmt.TableName); err == nil {
		return nil, &errors.TableExistsError{TableName: stmt.TableName}
	}

	columns := make([]schema.Column, len(stmt.Columns))
	names := make([]string, len(stmt.Columns))
	for i, def := range stmt.Columns {
		kind, err := value.ParseKind(def.Type)
		if err != nil {
			return nil, err
		}
		columns[i] = schema.Column{Name: def.Name, Kind: kind}
		names[i] = def.Name
	}

	s, err := schema.NewTableSchema(stmt.TableName, columns)
	if err != nil {
		return nil, err
	}
	if _, err := db.CreateTable(s); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("New table %s with column(s) %s created", stmt.TableName, strings.Join(names, " ")),
	}, nil
}

// executeRemove handles REMOVE
func executeRemove(stmt *ast.RemoveStatement, db *schema.Database) (*Result, error) {
	if err := db.DropTable(stmt.TableName); err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Table %s removed", stmt.TableName)}, nil
}
