package tui

import (
	"context"

	"github.com/MajdKZ1/WireStack/internal/runner"
)

// Leaf actions gather their parameters through line prompts before
// dispatching. Input is only trimmed; anything malformed is passed
// through for the wirestack binary to reject.

func (t *TUI) startServer(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.Up(ctx, server)
}

func (t *TUI) stopServer(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.Down(ctx, server)
}

func (t *TUI) reloadServer(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.Reload(ctx, server)
}

func (t *TUI) showServer(ctx context.Context) (*runner.Result, error) {
	name, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.ShowServer(ctx, name)
}

func (t *TUI) addServer(ctx context.Context) (*runner.Result, error) {
	name, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	endpoint, err := t.readLine(ctx, "Endpoint (ip:port): ")
	if err != nil {
		return nil, err
	}
	return t.engine.AddServer(ctx, name, endpoint)
}

func (t *TUI) deleteServer(ctx context.Context) (*runner.Result, error) {
	name, err := t.readLine(ctx, "Server name to delete: ")
	if err != nil {
		return nil, err
	}
	return t.engine.DeleteServer(ctx, name)
}

func (t *TUI) listClients(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.ListClients(ctx, server)
}

func (t *TUI) addClient(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	client, err := t.readLine(ctx, "Client name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.AddClient(ctx, server, client)
}

func (t *TUI) showClient(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	client, err := t.readLine(ctx, "Client name: ")
	if err != nil {
		return nil, err
	}
	return t.engine.ShowClient(ctx, server, client)
}

func (t *TUI) exportClient(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	client, err := t.readLine(ctx, "Client name: ")
	if err != nil {
		return nil, err
	}
	output, err := t.readLine(ctx, "Output path (e.g., ~/client.conf): ")
	if err != nil {
		return nil, err
	}
	return t.engine.ExportClient(ctx, server, client, output)
}

func (t *TUI) connectClient(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	client, err := t.readLine(ctx, "Client name: ")
	if err != nil {
		return nil, err
	}
	ninja, err := t.askYesNo(ctx, "Use ninja mode (Tor)? [y/N]: ")
	if err != nil {
		return nil, err
	}
	return t.engine.Connect(ctx, server, client, ninja)
}

func (t *TUI) disconnectClient(ctx context.Context) (*runner.Result, error) {
	server, err := t.readLine(ctx, "Server name: ")
	if err != nil {
		return nil, err
	}
	client, err := t.readLine(ctx, "Client name: ")
	if err != nil {
		return nil, err
	}
	ninja, err := t.askYesNo(ctx, "Use ninja mode (Tor)? [y/N]: ")
	if err != nil {
		return nil, err
	}
	return t.engine.Disconnect(ctx, server, client, ninja)
}

// torAction binds one service-manager action to a menu entry.
func (t *TUI) torAction(action string) actionFunc {
	return func(ctx context.Context) (*runner.Result, error) {
		return t.engine.Tor(ctx, action)
	}
}
