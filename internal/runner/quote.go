package runner

import "strings"

// Join renders an argument vector as a single shell-quoted line, for
// display and debugging. The result is never re-executed, but splitting
// it under POSIX shell quoting rules reproduces argv exactly.
func Join(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}

// safeChars are the bytes that never need quoting in a shell word.
const safeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%+=:,./-_"

// Quote returns arg as a single shell word. Safe strings pass through
// unchanged; everything else is wrapped in single quotes, with embedded
// single quotes rendered as '"'"'.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}
	safe := true
	for i := 0; i < len(arg); i++ {
		if !strings.ContainsRune(safeChars, rune(arg[i])) {
			safe = false
			break
		}
	}
	if safe {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
