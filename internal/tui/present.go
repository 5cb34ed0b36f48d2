package tui

import (
	"fmt"
	"io"

	"github.com/MajdKZ1/WireStack/internal/runner"
)

// Present writes one invocation result: the reconstructed command line
// behind a shell-prompt marker, stdout if non-empty, stderr if
// non-empty under a tag (a zero exit with stderr output is valid and
// still worth surfacing), then a blank separator line. The exit code is
// never printed; exit-driven decisions belong to the caller.
func Present(w io.Writer, res *runner.Result) {
	fmt.Fprintf(w, "\n$ %s\n", res.Command)
	if res.Stdout != "" {
		fmt.Fprintln(w, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprintf(w, "[stderr] %s\n", res.Stderr)
	}
	if res.Truncated {
		fmt.Fprintln(w, "[output truncated]")
	}
	fmt.Fprintln(w)
}
