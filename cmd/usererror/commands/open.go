package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/usererror/internal/logfields"
	"git.home.luguber.info/inful/usererror/usererror"
)

// OpenCmd implements the 'open' command.
type OpenCmd struct {
	Path string `arg:"" help:"File to print"`
}

func (o *OpenCmd) Run(g *Global) error {
	data, err := os.ReadFile(o.Path)
	if err != nil {
		g.Logger.Debug("read failed", logfields.Path(o.Path), logfields.Error(err))
		e := usererror.From(err)
		e.Push(fmt.Sprintf("Failed to open %q", o.Path))
		return e
	}
	_, err = g.Stdout.Write(data)
	return err
}
