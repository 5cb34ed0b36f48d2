package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errAborted marks a prompt cut short by cancellation or end of input.
var errAborted = errors.New("aborted")

// lineReader pumps lines from a reader into a channel so that prompts
// can select against context cancellation. Standard input is consumed
// line-by-line by whichever prompt is active; only one prompt runs at a
// time, so a single pump suffices.
type lineReader struct {
	lines chan string
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		close(lr.lines)
	}()
	return lr
}

// readLine prints a prompt and reads one trimmed line. Cancellation or
// end of input surfaces as errAborted.
func (t *TUI) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	select {
	case <-ctx.Done():
		return "", errAborted
	case line, ok := <-t.in.lines:
		if !ok {
			return "", errAborted
		}
		return strings.TrimSpace(line), nil
	}
}

// askYesNo prompts for a yes/no answer; anything starting with y counts
// as yes.
func (t *TUI) askYesNo(ctx context.Context, prompt string) (bool, error) {
	line, err := t.readLine(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}
