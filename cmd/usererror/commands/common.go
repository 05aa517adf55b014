package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/usererror/internal/config"
	"git.home.luguber.info/inful/usererror/internal/logfields"
	"git.home.luguber.info/inful/usererror/usererror"
)

// Global carries the state shared by every subcommand.
// Stdout and Stderr are set by main; AfterApply fills in the rest.
type Global struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *config.Config
	Renderer *usererror.Renderer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"usererror.yaml"`
	Color   string           `help:"Colorize errors: auto, always or never. Overrides the config file."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init   InitCmd   `cmd:"" help:"Write a default configuration file"`
	Render RenderCmd `cmd:"" help:"Render an error assembled from flags"`
	Open   OpenCmd   `cmd:"" help:"Print a file, reporting failures as user-facing errors"`
	Query  QueryCmd  `cmd:"" help:"Run a SQL statement against a SQLite database"`
}

// AfterApply runs after flag parsing: load config, set up logging and the renderer once.
func (c *CLI) AfterApply(g *Global) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Color != "" {
		cfg.Color = config.ColorMode(c.Color)
		if err := cfg.Normalize(); err != nil {
			return err
		}
	}

	level := cfg.Logging.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(g.Stderr, opts)
	if cfg.Logging.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(g.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	g.Logger = logger
	g.Config = cfg
	g.Renderer = usererror.NewRenderer(
		usererror.WithProbe(usererror.ProbeForMode(string(cfg.Color))),
		usererror.WithOutput(g.Stderr),
		usererror.WithLogger(logger),
	)

	logger.Debug("configuration loaded",
		logfields.ConfigPath(c.Config),
		logfields.ColorMode(string(cfg.Color)))
	return nil
}
