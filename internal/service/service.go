// Package service controls a background OS service through a service
// manager, probing a ranked list of candidate unit names until one
// responds. Unit naming varies across deployments (plain name, unit
// suffix, instantiated template), so a fixed priority order gives a
// single robust entry point.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MajdKZ1/WireStack/internal/runner"
)

// CommandRunner executes an argv and captures the outcome.
// Implemented by runner.Runner.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*runner.Result, error)
}

// Actions recognised by Control.
const (
	ActionStart  = "start"
	ActionStop   = "stop"
	ActionReload = "reload"
	ActionStatus = "status"
)

// Hint is appended to stderr when every candidate fails.
const Hint = " (Tor may not be installed, or systemctl may require sudo)"

// DefaultManager is the argv prefix for the service manager.
var DefaultManager = []string{"systemctl"}

// Candidates returns the ordered probe list for a service: the base
// name, its unit-suffixed form, the default instance, and that
// instance's unit-suffixed form.
func Candidates(base string) []string {
	return []string{
		base,
		base + ".service",
		base + "@default",
		base + "@default.service",
	}
}

// Controller probes candidate service names through a service manager.
type Controller struct {
	Manager    []string // argv prefix, e.g. ["systemctl"]
	Candidates []string // ordered probe list
	Runner     CommandRunner
}

// Control invokes the service manager with (action, candidate) for each
// candidate in order and returns the first zero-exit result unmodified.
// If every candidate fails, it returns a synthesized result carrying
// the last candidate's output, the installation hint, and the last exit
// code. An unrecognised action fails fast without invoking anything.
// An error is returned only when the service manager itself could not
// be launched.
func (c *Controller) Control(ctx context.Context, action string) (*runner.Result, error) {
	switch action {
	case ActionStart, ActionStop, ActionReload, ActionStatus:
	default:
		return &runner.Result{
			Stderr:   fmt.Sprintf("unsupported action %q", action),
			ExitCode: 1,
		}, nil
	}

	manager := c.Manager
	if len(manager) == 0 {
		manager = DefaultManager
	}

	var last *runner.Result
	for _, name := range c.Candidates {
		argv := append(append([]string{}, manager...), action, name)
		res, err := c.Runner.Run(ctx, argv)
		if err != nil {
			return nil, err
		}
		if res.OK() {
			return res, nil
		}
		last = res
	}

	// All candidates failed; surface the last error with a hint.
	if last == nil {
		return &runner.Result{ExitCode: 1, Stderr: strings.TrimSpace(Hint)}, nil
	}
	return &runner.Result{
		RunID:    last.RunID,
		Stdout:   last.Stdout,
		Stderr:   last.Stderr + Hint,
		ExitCode: last.ExitCode,
	}, nil
}
