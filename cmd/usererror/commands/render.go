package commands

import (
	"fmt"

	"git.home.luguber.info/inful/usererror/usererror"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Summary  string   `short:"s" required:"" help:"Headline of the error"`
	Reason   []string `short:"r" sep:"none" help:"Reason line, repeatable; shown in the given order"`
	Push     []string `short:"p" sep:"none" help:"Summary pushed over the current one, repeatable; the replaced summary becomes the first reason"`
	HelpText string   `name:"help-text" help:"Trailing help line"`
	NoExit   bool     `name:"no-exit" help:"Print the error and exit successfully"`
}

// Build assembles the error described by the flags.
func (r *RenderCmd) Build() (*usererror.Error, error) {
	e, err := usererror.TryNew(r.Summary)
	if err != nil {
		return nil, fmt.Errorf("invalid --summary: %w", err)
	}
	for _, reason := range r.Reason {
		e.Reason(reason)
	}
	for _, summary := range r.Push {
		e.Push(summary)
	}
	if r.HelpText != "" {
		e.Help(r.HelpText)
	}
	return e, nil
}

// Run returns the built error so main prints it and exits with status 1.
func (r *RenderCmd) Run(g *Global) error {
	e, err := r.Build()
	if err != nil {
		return err
	}
	if r.NoExit {
		g.Renderer.Print(e)
		return nil
	}
	return e
}
