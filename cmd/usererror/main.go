package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/usererror/cmd/usererror/commands"
	"git.home.luguber.info/inful/usererror/internal/logfields"
	"git.home.luguber.info/inful/usererror/internal/version"
	"git.home.luguber.info/inful/usererror/usererror"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli commands.CLI
	global := &commands.Global{Stdout: os.Stdout, Stderr: os.Stderr}

	parser, err := kong.New(&cli,
		kong.Name("usererror"),
		kong.Description("Render user-facing CLI errors."),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		usererror.From(err).PrintAndExit()
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		usererror.From(err).
			Help("Run 'usererror --help' for usage.").
			PrintAndExit()
	}

	if err := kctx.Run(&cli); err != nil {
		stop()
		if global.Logger != nil {
			global.Logger.Debug("command failed",
				logfields.Command(kctx.Command()),
				logfields.Error(err))
		}
		renderer := global.Renderer
		if renderer == nil {
			renderer = usererror.NewRenderer()
		}
		renderer.PrintAndExit(usererror.From(err))
	}
}
