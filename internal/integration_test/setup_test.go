package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leengari/minisql/internal/engine"
	"github.com/leengari/minisql/internal/executor"
)

// setupTestDB builds a session holding users and orders through commands
func setupTestDB(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.New(engine.NewSession(false))

	mustExec(t, eng, "CREATE users 3 int string bool id username active")
	mustExec(t, eng, "INSERT INTO users 3 ROWS", "1 alice true", "2 bob false", "3 charlie true")
	mustExec(t, eng, "CREATE orders 4 int int string double id user_id product amount")
	mustExec(t, eng, "INSERT INTO orders 5 ROWS",
		"10 1 Laptop 999.99",
		"11 2 Keyboard 75",
		"12 1 Mouse 25.5",
		"13 4 Monitor 180",
		"14 1 Cable 5",
	)
	return eng
}

// feed returns a LineReader over data
func feed(data ...string) executor.LineReader {
	return func() (string, error) {
		if len(data) == 0 {
			return "", nil
		}
		line := data[0]
		data = data[1:]
		return line, nil
	}
}

func mustExec(t *testing.T, eng *engine.Engine, line string, data ...string) *executor.Result {
	t.Helper()
	res, err := eng.Execute(line, feed(data...))
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return res
}

// output runs a command and returns what the read loop would print
func output(t *testing.T, eng *engine.Engine, line string, data ...string) string {
	t.Helper()
	var buf bytes.Buffer
	if _, err := eng.Run(&buf, line, feed(data...)); err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return buf.String()
}

// bodyLines drops the header and the count line of a PRINT or JOIN output
func bodyLines(out string) []string {
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}
	return lines[1 : len(lines)-1]
}
