// Package ops maps every front-end operation to its wirestack argument
// vector. It is the single dispatch point shared by the interactive
// menus and the MCP server: callers supply parameters, the engine
// builds the argv, runs it, and returns the captured result. The
// binary's own semantics stay opaque here; malformed parameters are
// passed through for the binary to reject.
package ops

import (
	"context"

	"github.com/MajdKZ1/WireStack/internal/runner"
	"github.com/MajdKZ1/WireStack/internal/service"
)

// CommandRunner executes an argv and captures the outcome.
// Implemented by runner.Runner.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*runner.Result, error)
}

// Engine holds shared dependencies for all operations.
type Engine struct {
	Binary  string // resolved path to the wirestack binary
	Runner  CommandRunner
	Service *service.Controller // Tor control
}

func (e *Engine) run(ctx context.Context, args ...string) (*runner.Result, error) {
	return e.Runner.Run(ctx, append([]string{e.Binary}, args...))
}

// ListServers lists all configured server profiles.
func (e *Engine) ListServers(ctx context.Context) (*runner.Result, error) {
	return e.run(ctx, "list-servers")
}

// ShowServer shows details for one server profile.
func (e *Engine) ShowServer(ctx context.Context, name string) (*runner.Result, error) {
	return e.run(ctx, "show", "server", name)
}

// ShowClient shows one client's details on a server.
func (e *Engine) ShowClient(ctx context.Context, server, client string) (*runner.Result, error) {
	return e.run(ctx, "show", "client", server, client)
}

// AddServer creates a server profile.
func (e *Engine) AddServer(ctx context.Context, name, endpoint string) (*runner.Result, error) {
	return e.run(ctx, "add-server", "--name", name, "--endpoint", endpoint)
}

// DeleteServer removes a server profile.
func (e *Engine) DeleteServer(ctx context.Context, name string) (*runner.Result, error) {
	return e.run(ctx, "delete-server", name)
}

// ListClients lists the clients attached to a server.
func (e *Engine) ListClients(ctx context.Context, server string) (*runner.Result, error) {
	return e.run(ctx, "list-clients", "--server", server)
}

// AddClient adds a client to a server.
func (e *Engine) AddClient(ctx context.Context, server, client string) (*runner.Result, error) {
	return e.run(ctx, "add-client", "--server", server, "--client", client)
}

// ExportClient writes a client configuration to the given path.
func (e *Engine) ExportClient(ctx context.Context, server, client, output string) (*runner.Result, error) {
	return e.run(ctx, "export-client", "--server", server, "--client", client, "--output", output)
}

// GenKey generates a key pair.
func (e *Engine) GenKey(ctx context.Context) (*runner.Result, error) {
	return e.run(ctx, "genkey")
}

// BinaryVersion reports the wirestack binary's version.
func (e *Engine) BinaryVersion(ctx context.Context) (*runner.Result, error) {
	return e.run(ctx, "version")
}

// Up brings up the interface for a server profile.
func (e *Engine) Up(ctx context.Context, server string) (*runner.Result, error) {
	return e.run(ctx, "up", server)
}

// Down brings down the interface for a server profile.
func (e *Engine) Down(ctx context.Context, server string) (*runner.Result, error) {
	return e.run(ctx, "down", server)
}

// Reload brings a server down, then up. A failed down short-circuits:
// its result is returned directly and up is never attempted, so the
// user sees the actual failure rather than a confusing follow-on.
func (e *Engine) Reload(ctx context.Context, server string) (*runner.Result, error) {
	down, err := e.Down(ctx, server)
	if err != nil {
		return nil, err
	}
	if !down.OK() {
		return down, nil
	}
	return e.Up(ctx, server)
}

// Connect brings up a client interface on this machine. When ninja is
// set a single extra flag is appended; the binary owns its semantics.
func (e *Engine) Connect(ctx context.Context, server, client string, ninja bool) (*runner.Result, error) {
	args := []string{"connect", "--server", server, "--client", client}
	if ninja {
		args = append(args, "--ninja")
	}
	return e.run(ctx, args...)
}

// Disconnect brings down a client interface on this machine.
func (e *Engine) Disconnect(ctx context.Context, server, client string, ninja bool) (*runner.Result, error) {
	args := []string{"disconnect", "--server", server, "--client", client}
	if ninja {
		args = append(args, "--ninja")
	}
	return e.run(ctx, args...)
}

// Tor controls the Tor service through the service manager.
func (e *Engine) Tor(ctx context.Context, action string) (*runner.Result, error) {
	return e.Service.Control(ctx, action)
}
