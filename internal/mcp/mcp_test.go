package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/MajdKZ1/WireStack/internal/ops"
	"github.com/MajdKZ1/WireStack/internal/runner"
	"github.com/MajdKZ1/WireStack/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// fakeRunner returns scripted results in sequence and records each argv.
type fakeRunner struct {
	results []*runner.Result
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, argv []string) (*runner.Result, error) {
	f.calls = append(f.calls, argv)
	res := &runner.Result{Command: runner.Join(argv)}
	if len(f.results) > 0 {
		res = f.results[0]
		f.results = f.results[1:]
		if res.Command == "" {
			res.Command = runner.Join(argv)
		}
	}
	return res, nil
}

// setup connects a wirestack MCP server and client over in-memory transports.
func setup(t *testing.T, f *fakeRunner) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	engine := &ops.Engine{
		Binary: "wirestack",
		Runner: f,
		Service: &service.Controller{
			Candidates: service.Candidates("tor"),
			Runner:     f,
		},
	}
	server := NewServer(engine)

	ct, st := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, st, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}

	t.Cleanup(func() {
		_ = cs.Close()
		_ = ss.Wait()
	})

	return cs
}

func callTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	return res
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestListServers(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{{Stdout: "alpha\nbeta"}}}
	cs := setup(t, f)

	res := callTool(t, cs, "ws_list_servers", nil)
	if res.IsError {
		t.Fatalf("IsError = true, text: %s", textOf(t, res))
	}
	text := textOf(t, res)
	if !strings.Contains(text, "$ wirestack list-servers") {
		t.Errorf("text = %q, want the command line", text)
	}
	if !strings.Contains(text, "exit: 0") {
		t.Errorf("text = %q, want the exit code", text)
	}
	if !strings.Contains(text, "alpha\nbeta") {
		t.Errorf("text = %q, want stdout", text)
	}
}

func TestConnect_NinjaFlag(t *testing.T) {
	f := &fakeRunner{}
	cs := setup(t, f)

	callTool(t, cs, "ws_connect", map[string]any{
		"server": "alpha",
		"client": "phone",
		"ninja":  true,
	})

	if len(f.calls) != 1 {
		t.Fatalf("runner invoked %d times, want 1", len(f.calls))
	}
	want := "wirestack connect --server alpha --client phone --ninja"
	if got := strings.Join(f.calls[0], " "); got != want {
		t.Errorf("argv = %q, want %q", got, want)
	}
}

func TestNonZeroExitIsToolError(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{{ExitCode: 2, Stderr: "no such server"}}}
	cs := setup(t, f)

	res := callTool(t, cs, "ws_up", map[string]any{"server": "ghost"})
	if !res.IsError {
		t.Fatal("IsError = false, want true for non-zero exit")
	}
	text := textOf(t, res)
	if !strings.Contains(text, "exit: 2") || !strings.Contains(text, "[stderr] no such server") {
		t.Errorf("text = %q, want exit code and tagged stderr", text)
	}
}

func TestTor_AllCandidatesFailed(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{
		{ExitCode: 5}, {ExitCode: 5}, {ExitCode: 5}, {ExitCode: 3, Stderr: "unit not found"},
	}}
	cs := setup(t, f)

	res := callTool(t, cs, "ws_tor", map[string]any{"action": "start"})
	if !res.IsError {
		t.Fatal("IsError = false, want true when every candidate fails")
	}
	if len(f.calls) != 4 {
		t.Errorf("runner invoked %d times, want 4", len(f.calls))
	}
	text := textOf(t, res)
	if !strings.Contains(text, "may require sudo") {
		t.Errorf("text = %q, want the installation hint", text)
	}
	if !strings.Contains(text, "exit: 3") {
		t.Errorf("text = %q, want the last candidate's exit code", text)
	}
}

func TestReload_ShortCircuit(t *testing.T) {
	f := &fakeRunner{results: []*runner.Result{{ExitCode: 2, Stderr: "interface not up"}}}
	cs := setup(t, f)

	res := callTool(t, cs, "ws_reload", map[string]any{"server": "alpha"})
	if !res.IsError {
		t.Fatal("IsError = false, want true for the failed down")
	}
	if len(f.calls) != 1 {
		t.Errorf("runner invoked %d times, want 1 (up must not run)", len(f.calls))
	}
}
