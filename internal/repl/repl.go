package repl

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leengari/minisql/internal/engine"
	"github.com/leengari/minisql/internal/executor"
)

// Prompt is written before every command
const Prompt = "% "

// ErrReadInput is returned when the input cannot be read; the process should exit non-zero
var ErrReadInput = stderrors.New("error reading from input")

// lineReader reads newline terminated lines, accepting a last line without a newline
type lineReader struct {
	r *bufio.Reader
}

func (lr *lineReader) next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// nextCommand skips blank lines
func (lr *lineReader) nextCommand() (string, error) {
	for {
		line, err := lr.next()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// Run reads commands from in until QUIT, end of input or ctx is done, and
// writes their output to out. It returns nil on QUIT and at end of input.
func Run(ctx context.Context, eng *engine.Engine, in io.Reader, out io.Writer) error {
	lr := &lineReader{r: bufio.NewReader(in)}
	w := bufio.NewWriter(out)
	defer w.Flush()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, Prompt); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}

		line, err := lr.nextCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintln(w, "Error reading from input")
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		quit, err := eng.Run(w, line, lr.next)
		if stderrors.Is(err, executor.ErrReadInput) {
			slog.Error("command aborted", slog.String("line", line), slog.Any("error", err))
			fmt.Fprintln(w, "Error reading from input")
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		if err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
