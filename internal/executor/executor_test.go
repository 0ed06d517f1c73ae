package executor

import (
	"bytes"
	stderrors "errors"
	"io"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/parser"
)

// lines feeds data lines to INSERT and reports io.EOF when they run out
func lines(ls ...string) LineReader {
	return func() (string, error) {
		if len(ls) == 0 {
			return "", io.EOF
		}
		l := ls[0]
		ls = ls[1:]
		return l, nil
	}
}

func run(t *testing.T, db *schema.Database, command string, data ...string) (*Result, error) {
	t.Helper()
	stmt, err := parser.ParseLine(command)
	assert.NilError(t, err, command)
	return Execute(stmt, db, lines(data...))
}

func mustRun(t *testing.T, db *schema.Database, command string, data ...string) *Result {
	t.Helper()
	res, err := run(t, db, command, data...)
	assert.NilError(t, err, command)
	return res
}

func render(t *testing.T, res *Result, quiet bool) string {
	t.Helper()
	var buf bytes.Buffer
	assert.NilError(t, res.Render(&buf, quiet))
	return buf.String()
}

func TestCreateRemove(t *testing.T) {
	db := schema.NewDatabase()

	res := mustRun(t, db, "CREATE T 2 int string a b")
	assert.Equal(t, res.Message, "New table T with column(s) a b created")

	_, err := run(t, db, "CREATE T 1 int a")
	assert.Assert(t, stderrors.Is(err, errors.ErrTableExists))
	assert.Error(t, err, "Cannot create already existing table T")

	_, err = run(t, db, "CREATE U 1 float a")
	assert.Error(t, err, "Invalid column type 'float'")

	_, err = run(t, db, "CREATE U 2 int int a a")
	assert.Assert(t, stderrors.Is(err, errors.ErrMalformedCommand))

	res = mustRun(t, db, "REMOVE T")
	assert.Equal(t, res.Message, "Table T removed")

	_, err = run(t, db, "REMOVE T")
	assert.Error(t, err, "T does not name a table in the database")
	assert.DeepEqual(t, db.TableNames(), []string{})
}

func TestInsertReportsPositions(t *testing.T) {
	db := schema.NewDatabase()
	mustRun(t, db, "CREATE T 2 int bool a b")

	res := mustRun(t, db, "INSERT INTO T 2 ROWS", "1 true", "2 0")
	assert.Equal(t, res.Message, "Added 2 rows to T from position 0 to 1")

	res = mustRun(t, db, "INSERT INTO T 1 ROWS", "3 1")
	assert.Equal(t, res.Message, "Added 1 rows to T from position 2 to 2")
}

func TestInsertConsumesEveryDataLine(t *testing.T) {
	db := schema.NewDatabase()
	mustRun(t, db, "CREATE T 1 int a")

	next := lines("1", "x", "3", "REMOVE T")
	stmt, err := parser.ParseLine("INSERT INTO T 3 ROWS")
	assert.NilError(t, err)

	_, err = Execute(stmt, db, next)
	assert.Error(t, err, "Invalid value for column a in row 2")

	// the line after the batch is still unread
	line, err := next()
	assert.NilError(t, err)
	assert.Equal(t, line, "REMOVE T")

	table, err := db.GetTable("T")
	assert.NilError(t, err)
	assert.Equal(t, table.RowCount(), 1)
}

func TestInsertUnknownTableConsumesDataLines(t *testing.T) {
	db := schema.NewDatabase()

	next := lines("1", "2", "QUIT")
	stmt, err := parser.ParseLine("INSERT INTO Z 2 ROWS")
	assert.NilError(t, err)

	_, err = Execute(stmt, db, next)
	assert.Error(t, err, "Z does not name a table in the database")

	line, err := next()
	assert.NilError(t, err)
	assert.Equal(t, line, "QUIT")
}

func TestInsertShortInput(t *testing.T) {
	db := schema.NewDatabase()
	mustRun(t, db, "CREATE T 1 int a")

	_, err := run(t, db, "INSERT INTO T 3 ROWS", "7")
	assert.Assert(t, stderrors.Is(err, errors.ErrArityMismatch))
	assert.Error(t, err, "Expected 1 values, but got 0 on row 2")
}

func TestInsertHugeRowCountReadsUntilEndOfInput(t *testing.T) {
	db := schema.NewDatabase()
	mustRun(t, db, "CREATE T 1 int a")

	res, err := run(t, db, "INSERT INTO T 9223372036854775807 ROWS", "1", "2")
	assert.Assert(t, stderrors.Is(err, errors.ErrArityMismatch))
	assert.Error(t, err, "Expected 1 values, but got 0 on row 3")
	assert.Equal(t, res.Affected, 2)

	table, err := db.GetTable("T")
	assert.NilError(t, err)
	assert.Equal(t, table.RowCount(), 2)
}

func TestRender(t *testing.T) {
	res := &Result{
		Columns: []string{"a", "b"},
		Rows: []value.Row{
			{value.Int(1), value.Text("x")},
			{value.Int(2), value.Text("y")},
		},
		Tabular: true,
		Message: "Printed 2 matching rows from T",
	}

	assert.Equal(t, render(t, res, false), "a b \n1 x \n2 y \nPrinted 2 matching rows from T\n")
	assert.Equal(t, render(t, res, true), "Printed 2 matching rows from T\n")

	empty := &Result{Columns: []string{"a"}, Tabular: true, Message: "Printed 0 matching rows from T"}
	assert.Equal(t, render(t, empty, false), "a \nPrinted 0 matching rows from T\n")

	assert.Equal(t, render(t, &Result{}, false), "")
}

func TestPrintDeleteGenerateJoin(t *testing.T) {
	db := schema.NewDatabase()
	mustRun(t, db, "CREATE T 2 int double a b")
	mustRun(t, db, "INSERT INTO T 3 ROWS", "1 0.5", "2 1.25", "2 3")
	mustRun(t, db, "CREATE U 2 int string k name")
	mustRun(t, db, "INSERT INTO U 2 ROWS", "2 two", "1 one")

	res := mustRun(t, db, "GENERATE FOR T bst INDEX ON a")
	assert.Equal(t, res.Message, "Generated bst index for table T on column a, with 2 distinct keys")

	res = mustRun(t, db, "PRINT FROM T 1 b WHERE a > 1")
	assert.Equal(t, render(t, res, false), "b \n1.25 \n3 \nPrinted 2 matching rows from T\n")

	res = mustRun(t, db, "JOIN T AND U WHERE a = k AND PRINT 2 name 2 b 1")
	assert.Equal(t, render(t, res, false), "name b \none 0.5 \ntwo 1.25 \ntwo 3 \nPrinted 3 rows from joining T to U\n")

	res = mustRun(t, db, "DELETE FROM T WHERE b < 2")
	assert.Equal(t, res.Message, "Deleted 2 rows from T")

	res = mustRun(t, db, "PRINT FROM T 2 a b ALL")
	assert.Equal(t, render(t, res, false), "a b \n2 3 \nPrinted 1 matching rows from T\n")

	_, err := run(t, db, "GENERATE FOR T trie INDEX ON a")
	assert.Error(t, err, "Invalid index type 'trie'")

	_, err = run(t, db, "JOIN T AND U WHERE a = name AND PRINT 1 a 1")
	assert.Error(t, err, "Column types do not match for join columns")
}

func TestQuitAndComment(t *testing.T) {
	db := schema.NewDatabase()

	res := mustRun(t, db, "QUIT")
	assert.Assert(t, res.Quit)
	assert.Equal(t, render(t, res, true), "Thanks for using!\n")

	res = mustRun(t, db, "# nothing happens")
	assert.Equal(t, render(t, res, false), "")
}
