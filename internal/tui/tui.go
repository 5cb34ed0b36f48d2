// Package tui implements the interactive menu front-end: a small
// hierarchy of modal loops that map single-key choices onto wirestack
// invocations and print the captured results. All real work happens in
// the external binary; the menus only gather parameters and dispatch.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MajdKZ1/WireStack/internal/ops"
	"github.com/MajdKZ1/WireStack/internal/runner"
	"github.com/MajdKZ1/WireStack/internal/service"
)

const banner = `
__        ___           ____  _             _
\ \      / (_)_ __ ___ / ___|| |_ __ _  ___| | __
 \ \ /\ / /| | '__/ _ \\___ \| __/ _' |/ __| |/ /
  \ V  V / | | | |  __/ ___) | || (_| | (__|   <
   \_/\_/  |_|_|  \___||____/ \__\__,_|\___|_|\_\
      WireStack by Majd Alzadjali
`

// TUI drives the interactive session over line-oriented stdio.
type TUI struct {
	engine *ops.Engine
	in     *lineReader
	out    io.Writer
}

// New builds a session reading choices from in and writing to out.
func New(engine *ops.Engine, in io.Reader, out io.Writer) *TUI {
	return &TUI{engine: engine, in: newLineReader(in), out: out}
}

// Run shows the banner, requires an explicit confirmation, then enters
// the root menu. It returns when the operator quits or input ends.
func (t *TUI) Run(ctx context.Context) error {
	fmt.Fprint(t.out, banner+"\n")

	ok, err := t.askYesNo(ctx, "Press Y to continue or N to quit: ")
	if err != nil {
		return nil
	}
	if !ok {
		fmt.Fprintln(t.out, "Declined. Bye.")
		return nil
	}

	for {
		fmt.Fprint(t.out, "\nChoose mode:\n")
		fmt.Fprintln(t.out, "1) Host (run/manage server)")
		fmt.Fprintln(t.out, "2) Run on current device (client)")
		fmt.Fprintln(t.out, "q) Quit")

		choice, err := t.readLine(ctx, "Select option: ")
		if err != nil {
			return nil
		}
		switch strings.ToLower(choice) {
		case "1":
			if err := t.menuLoop(ctx, "Host mode", t.hostEntries()); err != nil {
				return err
			}
		case "2":
			if err := t.menuLoop(ctx, "Run on current device", t.deviceEntries()); err != nil {
				return err
			}
		case "q":
			fmt.Fprintln(t.out, "Bye.")
			return nil
		default:
			fmt.Fprint(t.out, "Invalid choice.\n\n")
		}
	}
}

func (t *TUI) hostEntries() []entry {
	return []entry{
		{key: "1", label: "Start server (up)", run: t.startServer},
		{key: "2", label: "Stop server (down)", run: t.stopServer},
		{key: "3", label: "Reload server (down/up)", run: t.reloadServer},
		{key: "4", label: "Export client config", run: t.exportClient},
		{key: "5", label: "Advanced options", sub: func(ctx context.Context) error {
			return t.menuLoop(ctx, "Advanced", t.advancedEntries())
		}},
		{key: "b", label: "Back"},
	}
}

func (t *TUI) deviceEntries() []entry {
	return []entry{
		{key: "1", label: "Connect as client", run: t.connectClient},
		{key: "2", label: "Disconnect client", run: t.disconnectClient},
		{key: "3", label: "Start Tor (ninja mode)", run: t.torAction(service.ActionStart)},
		{key: "4", label: "Stop Tor", run: t.torAction(service.ActionStop)},
		{key: "5", label: "Reload Tor", run: t.torAction(service.ActionReload)},
		{key: "6", label: "Tor status", run: t.torAction(service.ActionStatus)},
		{key: "b", label: "Back"},
	}
}

func (t *TUI) advancedEntries() []entry {
	return []entry{
		{key: "1", label: "List servers", run: func(ctx context.Context) (*runner.Result, error) {
			return t.engine.ListServers(ctx)
		}},
		{key: "2", label: "Show server details", run: t.showServer},
		{key: "3", label: "Add server", run: t.addServer},
		{key: "4", label: "Delete server", run: t.deleteServer},
		{key: "5", label: "List clients for server", run: t.listClients},
		{key: "6", label: "Add client", run: t.addClient},
		{key: "7", label: "Generate key pair", run: func(ctx context.Context) (*runner.Result, error) {
			return t.engine.GenKey(ctx)
		}},
		{key: "8", label: "Show client details", run: t.showClient},
		{key: "9", label: "Show wirestack version", run: func(ctx context.Context) (*runner.Result, error) {
			return t.engine.BinaryVersion(ctx)
		}},
		{key: "b", label: "Back"},
	}
}
