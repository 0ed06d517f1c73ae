package executor

import (
	"fmt"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/query/indexing"
)

// executeGenerate handles GENERATE FOR ... INDEX ON
func executeGenerate(stmt *ast.GenerateStatement, db *schema.Database) (*Result, error) {
	table, err := db.GetTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	idx, err := indexing.Generate(table, stmt.Column, stmt.IndexKind)
	if err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("Generated %s index for table %s on column %s, with %d distinct keys",
			idx.Kind(), stmt.TableName, stmt.Column, idx.DistinctKeys()),
	}, nil
}
