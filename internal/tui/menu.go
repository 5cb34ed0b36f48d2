package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/MajdKZ1/WireStack/internal/runner"
)

// actionFunc prompts for any parameters it needs and performs one
// operation. A nil result with a nil error means nothing to present.
type actionFunc func(ctx context.Context) (*runner.Result, error)

// entry binds a single-character key to a menu action. Keys are unique
// within a menu and their order is the display order. run == nil marks
// a structural entry: a submenu when sub is set, back otherwise.
type entry struct {
	key   string
	label string
	run   actionFunc
	sub   func(ctx context.Context) error
}

func find(entries []entry, key string) (entry, bool) {
	for _, e := range entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}

// menuLoop renders a menu and dispatches choices until back is chosen
// or input ends. The full option list is redrawn every iteration. An
// unrecognised key prints a notice and redisplays; a failing action is
// contained, so the loop itself never dies.
func (t *TUI) menuLoop(ctx context.Context, title string, entries []entry) error {
	for {
		fmt.Fprintf(t.out, "\n%s\n", title)
		for _, e := range entries {
			fmt.Fprintf(t.out, "%s) %s\n", e.key, e.label)
		}

		choice, err := t.readLine(ctx, "Select option: ")
		if err != nil {
			return nil
		}
		if strings.ToLower(choice) == "b" {
			return nil
		}

		e, ok := find(entries, choice)
		if !ok {
			fmt.Fprint(t.out, "Invalid choice.\n\n")
			continue
		}
		if e.sub != nil {
			if err := e.sub(ctx); err != nil {
				return err
			}
			continue
		}
		if e.run == nil {
			return nil
		}

		fmt.Fprintf(t.out, "== %s ==\n", e.label)
		t.execute(ctx, e.run)
	}
}

// execute runs one bound action, containing both kinds of disruption:
// a user interrupt during its prompts or invocation prints "Cancelled."
// and any other failure prints "Error: ...". Either way the menu stays
// usable.
func (t *TUI) execute(ctx context.Context, run actionFunc) {
	actionCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	res, err := run(actionCtx)
	switch {
	case actionCtx.Err() != nil || errors.Is(err, errAborted):
		fmt.Fprint(t.out, "\nCancelled.\n\n")
	case err != nil:
		fmt.Fprintf(t.out, "Error: %v\n\n", err)
	case res != nil:
		Present(t.out, res)
	}
}
