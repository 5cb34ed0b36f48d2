package runner

// Result holds the captured output of one external invocation.
// Immutable once returned by Run.
type Result struct {
	RunID     string // unique identifier for this invocation
	Command   string // shell-quoted argv, for display only
	Stdout    string // captured stdout, whitespace-trimmed
	Stderr    string // captured stderr, whitespace-trimmed
	ExitCode  int    // process exit code, verbatim
	Truncated bool   // true if output exceeded the size cap
}

// OK reports whether the invocation exited zero. The exit code is the
// sole success signal; callers never infer success from stdout or stderr.
func (r *Result) OK() bool {
	return r.ExitCode == 0
}
