package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/usererror/internal/config"
	"git.home.luguber.info/inful/usererror/usererror"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write usererror.yaml into"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, config.DefaultPath)
	}
	return RunInit(g, path, i.Force)
}

func RunInit(g *Global, configPath string, force bool) error {
	if err := config.Init(configPath, force); err != nil {
		e := usererror.From(err)
		e.Push("Initialization failed")
		if !force {
			e.SetHelp("Pass --force to overwrite the existing file.")
		}
		return e
	}
	_, _ = fmt.Fprintf(g.Stdout, "Wrote configuration to %s\n", configPath)
	return nil
}
