// Command wirestack-tui provides a guided menu front-end for the
// wirestack binary and the Tor service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	wirestack "github.com/MajdKZ1/WireStack"
	"github.com/MajdKZ1/WireStack/internal/config"
	"github.com/MajdKZ1/WireStack/internal/locate"
	wsmcp "github.com/MajdKZ1/WireStack/internal/mcp"
	"github.com/MajdKZ1/WireStack/internal/ops"
	"github.com/MajdKZ1/WireStack/internal/runner"
	"github.com/MajdKZ1/WireStack/internal/service"
	"github.com/MajdKZ1/WireStack/internal/tui"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wirestack-tui: ")

	cmd := "tui"
	args := os.Args[1:]
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		args = os.Args[2:]
	}

	var err error
	switch cmd {
	case "tui":
		err = tuiMain(args)
	case "mcp":
		err = mcpMain(args)
	case "version":
		fmt.Println(wirestack.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "wirestack-tui: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: wirestack-tui [command]

Commands:
  tui         Run the interactive menu (default)
  mcp         Start the MCP server on stdio
  version     Print the version
  help        Show this help

The wirestack binary is looked up via $WIRESTACK_BIN, the optional
~/.wirestack-tui config file, or next to this executable's install root.`)
}

// newEngine resolves the binary, loads the optional config file, and
// wires the dispatch engine. Resolution failure is fatal: no menu or
// server is ever started against a missing binary.
func newEngine() (*ops.Engine, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg, err := config.Load(home)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating own executable: %w", err)
	}

	path := locate.Resolve(os.Getenv, exe)
	if os.Getenv(locate.EnvVar) == "" && cfg.Binary != "" {
		path = cfg.Binary
	}
	path, err = locate.Ensure(path)
	if err != nil {
		return nil, err
	}

	r := &runner.Runner{
		Timeout:   cfg.Timeout(),
		MaxOutput: cfg.MaxOutputBytes(),
	}

	return &ops.Engine{
		Binary: path,
		Runner: r,
		Service: &service.Controller{
			Manager:    cfg.ServiceManager(),
			Candidates: cfg.ServiceCandidates(),
			Runner:     r,
		},
	}, nil
}

func tuiMain(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	_ = fs.Parse(args)

	engine, err := newEngine()
	if err != nil {
		return err
	}

	// No process-wide interrupt context here: the menu loop installs
	// its own handler around each action so that Ctrl+C cancels the
	// action, not the session.
	t := tui.New(engine, os.Stdin, os.Stdout)
	return t.Run(context.Background())
}

func mcpMain(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	instructions := fs.Bool("instructions", false, "print model instructions and exit")
	_ = fs.Parse(args)

	if *instructions {
		fmt.Print(wsmcp.Instructions)
		return nil
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return wsmcp.NewServer(engine).Run(ctx, &mcpsdk.StdioTransport{})
}
