// Package mcp exposes every wirestack operation as an MCP tool over a
// stdio transport, reusing the same dispatch engine as the interactive
// menus. Unlike the human-facing presenter, tool output does include
// the exit code, since a machine caller has no other success signal.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	wirestack "github.com/MajdKZ1/WireStack"
	"github.com/MajdKZ1/WireStack/internal/ops"
	"github.com/MajdKZ1/WireStack/internal/runner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	engine *ops.Engine
}

// NewServer creates an MCP server with all wirestack tools registered.
func NewServer(engine *ops.Engine) *mcp.Server {
	h := &handler{engine: engine}

	opts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "wirestack-tui", Version: wirestack.Version}, opts)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_list_servers",
		Description: "List all configured server profiles.",
	}, h.listServers)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_show_server",
		Description: "Show details for one server profile.",
	}, h.showServer)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_add_server",
		Description: "Create a server profile with the given name and endpoint.",
	}, h.addServer)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_delete_server",
		Description: "Delete a server profile.",
	}, h.deleteServer)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_list_clients",
		Description: "List the clients attached to a server profile.",
	}, h.listClients)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_add_client",
		Description: "Add a client to a server profile.",
	}, h.addClient)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_show_client",
		Description: "Show one client's details on a server profile.",
	}, h.showClient)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_export_client",
		Description: "Export a client configuration file to the given path.",
	}, h.exportClient)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_genkey",
		Description: "Generate a key pair.",
	}, h.genKey)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_version",
		Description: "Report the wirestack binary's version.",
	}, h.version)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_up",
		Description: "Bring up the interface for a server profile.",
	}, h.up)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_down",
		Description: "Bring down the interface for a server profile.",
	}, h.down)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_reload",
		Description: "Reload a server: down, then up. A failed down short-circuits and its failure is reported directly.",
	}, h.reload)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_connect",
		Description: "Bring up a client interface on this machine. Set ninja to route through Tor.",
	}, h.connect)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_disconnect",
		Description: "Bring down a client interface on this machine.",
	}, h.disconnect)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ws_tor",
		Description: "Control the Tor service: start, stop, reload, or status. Probes common unit names until one responds.",
	}, h.tor)

	return s
}

type serverParams struct {
	Server string `json:"server" jsonschema:"Server profile name."`
}

type clientParams struct {
	Server string `json:"server" jsonschema:"Server profile name."`
	Client string `json:"client" jsonschema:"Client name."`
}

type connectParams struct {
	Server string `json:"server" jsonschema:"Server profile name."`
	Client string `json:"client" jsonschema:"Client name."`
	Ninja  bool   `json:"ninja,omitempty" jsonschema:"Route the tunnel through Tor."`
}

type addServerParams struct {
	Name     string `json:"name" jsonschema:"Server profile name."`
	Endpoint string `json:"endpoint" jsonschema:"Endpoint in the form ip:port."`
}

type exportParams struct {
	Server string `json:"server" jsonschema:"Server profile name."`
	Client string `json:"client" jsonschema:"Client name."`
	Output string `json:"output" jsonschema:"Path to write the client configuration."`
}

type torParams struct {
	Action string `json:"action" jsonschema:"One of start, stop, reload, status."`
}

type emptyParams struct{}

func (h *handler) listServers(ctx context.Context, _ *mcp.CallToolRequest, _ emptyParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.ListServers(ctx))
}

func (h *handler) showServer(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.ShowServer(ctx, p.Server))
}

func (h *handler) addServer(ctx context.Context, _ *mcp.CallToolRequest, p addServerParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.AddServer(ctx, p.Name, p.Endpoint))
}

func (h *handler) deleteServer(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.DeleteServer(ctx, p.Server))
}

func (h *handler) listClients(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.ListClients(ctx, p.Server))
}

func (h *handler) addClient(ctx context.Context, _ *mcp.CallToolRequest, p clientParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.AddClient(ctx, p.Server, p.Client))
}

func (h *handler) showClient(ctx context.Context, _ *mcp.CallToolRequest, p clientParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.ShowClient(ctx, p.Server, p.Client))
}

func (h *handler) exportClient(ctx context.Context, _ *mcp.CallToolRequest, p exportParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.ExportClient(ctx, p.Server, p.Client, p.Output))
}

func (h *handler) genKey(ctx context.Context, _ *mcp.CallToolRequest, _ emptyParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.GenKey(ctx))
}

func (h *handler) version(ctx context.Context, _ *mcp.CallToolRequest, _ emptyParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.BinaryVersion(ctx))
}

func (h *handler) up(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Up(ctx, p.Server))
}

func (h *handler) down(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Down(ctx, p.Server))
}

func (h *handler) reload(ctx context.Context, _ *mcp.CallToolRequest, p serverParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Reload(ctx, p.Server))
}

func (h *handler) connect(ctx context.Context, _ *mcp.CallToolRequest, p connectParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Connect(ctx, p.Server, p.Client, p.Ninja))
}

func (h *handler) disconnect(ctx context.Context, _ *mcp.CallToolRequest, p connectParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Disconnect(ctx, p.Server, p.Client, p.Ninja))
}

func (h *handler) tor(ctx context.Context, _ *mcp.CallToolRequest, p torParams) (*mcp.CallToolResult, any, error) {
	return invocation(h.engine.Tor(ctx, p.Action))
}

// invocation converts an engine call's outcome into a tool result. A
// start failure becomes an error result; a completed invocation is
// rendered as text, flagged as an error when the exit code is non-zero.
func invocation(res *runner.Result, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return errorResult(fmt.Sprintf("invocation failed: %v", err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "$ %s\n", res.Command)
	fmt.Fprintf(&b, "exit: %d\n", res.ExitCode)
	if res.Stdout != "" {
		fmt.Fprintln(&b, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprintf(&b, "[stderr] %s\n", res.Stderr)
	}
	if res.Truncated {
		fmt.Fprintln(&b, "[output truncated]")
	}

	if !res.OK() {
		return errorResult(b.String())
	}
	return textResult(b.String())
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult is a helper to build an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
