package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MajdKZ1/WireStack/internal/runner"
)

// fakeRunner returns scripted results in sequence and records each argv.
type fakeRunner struct {
	results []*runner.Result
	err     error
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, argv []string) (*runner.Result, error) {
	f.calls = append(f.calls, argv)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return &runner.Result{Command: runner.Join(argv), ExitCode: 1}, nil
	}
	res := f.results[0]
	f.results = f.results[1:]
	if res.Command == "" {
		res.Command = runner.Join(argv)
	}
	return res, nil
}

func newController(r CommandRunner) *Controller {
	return &Controller{
		Candidates: Candidates("tor"),
		Runner:     r,
	}
}

func TestControl_FirstSuccessWins(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{
		{ExitCode: 5},
		{ExitCode: 4},
		{ExitCode: 0, Stdout: "active"},
		{ExitCode: 0},
	}}
	c := newController(f)

	res, err := c.Control(context.Background(), ActionStatus)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if len(f.calls) != 3 {
		t.Fatalf("runner invoked %d times, want 3", len(f.calls))
	}
	if res.ExitCode != 0 || res.Stdout != "active" {
		t.Errorf("got %+v, want the third candidate's result unmodified", res)
	}
	if strings.Contains(res.Stderr, "may not be installed") {
		t.Errorf("Stderr = %q, must not carry the failure hint on success", res.Stderr)
	}
}

func TestControl_ProbeOrder(t *testing.T) {
	f := &fakeRunner{}
	c := newController(f)

	if _, err := c.Control(context.Background(), ActionStart); err != nil {
		t.Fatalf("Control: %v", err)
	}

	want := []string{"tor", "tor.service", "tor@default", "tor@default.service"}
	if len(f.calls) != len(want) {
		t.Fatalf("runner invoked %d times, want %d", len(f.calls), len(want))
	}
	for i, argv := range f.calls {
		wantArgv := fmt.Sprintf("systemctl start %s", want[i])
		if got := strings.Join(argv, " "); got != wantArgv {
			t.Errorf("call %d = %q, want %q", i, got, wantArgv)
		}
	}
}

func TestControl_AllFailed(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{
		{ExitCode: 5, Stderr: "unit not found"},
		{ExitCode: 4, Stderr: "unit not found"},
		{ExitCode: 3, Stderr: "unit not found"},
		{ExitCode: 2, Stderr: "Failed to start tor@default.service"},
	}}
	c := newController(f)

	res, err := c.Control(context.Background(), ActionStart)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if res.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want the last candidate's exit code 2", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "Failed to start tor@default.service") {
		t.Errorf("Stderr = %q, want to carry the last candidate's stderr", res.Stderr)
	}
	if !strings.Contains(res.Stderr, "Tor may not be installed, or systemctl may require sudo") {
		t.Errorf("Stderr = %q, want the installation hint", res.Stderr)
	}
}

func TestControl_EmptyCandidateList(t *testing.T) {
	f := &fakeRunner{}
	c := &Controller{Runner: f}

	res, err := c.Control(context.Background(), ActionStop)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("runner invoked %d times, want 0", len(f.calls))
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "may require sudo") {
		t.Errorf("Stderr = %q, want the installation hint", res.Stderr)
	}
}

func TestControl_UnsupportedAction(t *testing.T) {
	f := &fakeRunner{}
	c := newController(f)

	res, err := c.Control(context.Background(), "restart")
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("runner invoked %d times, want 0", len(f.calls))
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
	if res.Command != "" {
		t.Errorf("Command = %q, want empty", res.Command)
	}
	if !strings.Contains(res.Stderr, "restart") {
		t.Errorf("Stderr = %q, want to name the rejected action", res.Stderr)
	}
}

func TestControl_ManagerStartFailurePropagates(t *testing.T) {
	f := &fakeRunner{err: errors.New("executing systemctl: file not found")}
	c := newController(f)

	_, err := c.Control(context.Background(), ActionStatus)
	if err == nil {
		t.Fatal("expected error when the service manager cannot be launched")
	}
}

func TestControl_CustomManager(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{{ExitCode: 0}}}
	c := &Controller{
		Manager:    []string{"sudo", "systemctl"},
		Candidates: []string{"tor"},
		Runner:     f,
	}

	if _, err := c.Control(context.Background(), ActionReload); err != nil {
		t.Fatalf("Control: %v", err)
	}
	if got := strings.Join(f.calls[0], " "); got != "sudo systemctl reload tor" {
		t.Errorf("argv = %q, want %q", got, "sudo systemctl reload tor")
	}
}
