// Package locate resolves the path to the wirestack binary driven by
// the interactive front-end. Resolution is a pure computation over the
// environment; existence is verified separately so that path logic can
// be tested without touching the filesystem.
package locate

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar overrides the binary path when set.
const EnvVar = "WIRESTACK_BIN"

// BinaryName is the fixed filename used when no override is set.
const BinaryName = "wirestack"

// Resolve computes the binary path. getenv supplies the environment
// (os.Getenv in production) and exePath is the running executable's own
// path. The override variable wins; otherwise the default is the fixed
// filename in the executable's parent-of-parent directory, matching the
// layout where the front-end is installed under <root>/bin.
func Resolve(getenv func(string) string, exePath string) string {
	if p := getenv(EnvVar); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exePath)), BinaryName)
}

// NotFoundError reports a resolved binary path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("wirestack binary not found at %s. Build it with 'go build ./cmd/wirestack' or set $%s.", e.Path, EnvVar)
}

// Ensure verifies that the resolved path exists, returning it unchanged
// on success. This is the single call site where resolution can fail.
func Ensure(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &NotFoundError{Path: path}
	}
	return path, nil
}
