package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"deckterm/internal/config"
	"deckterm/internal/deck"
	"deckterm/internal/logging"
	"deckterm/internal/present"
	"deckterm/internal/source"
	"deckterm/internal/trace"
	"deckterm/internal/ui"
)

// shutdownTimeout bounds the final span flush after the presentation ends.
const shutdownTimeout = 2 * time.Second

// cli holds the state shared by the commands of one invocation.
type cli struct {
	root *cobra.Command
	v    *viper.Viper

	configPath string
	noFooter   bool
	verbosity  int

	cfg     *config.Config
	logger  *slog.Logger
	closers []io.Closer

	// Terminal the presentation runs on.
	in, out *os.File
}

func newCLI() *cli {
	c := &cli{
		v:      config.New(),
		logger: logging.NewDiscard(),
		in:     os.Stdin,
		out:    os.Stdout,
	}

	root := &cobra.Command{
		Use:   "deckterm FILE",
		Short: "Present a markdown file as slides in the terminal",
		Long: `deckterm splits a markdown document into slides at every header line
and shows them one at a time, full screen.

An optional metadata block delimited by --- lines at the top of the file
sets the title, subtitle, and author. Navigate with l (next), h (previous),
and q (quit).`,
		Example: `  # Present a deck
  deckterm talk.md

  # Use a light theme without the footer
  deckterm --theme catppuccin-latte --no-footer talk.md

  # Print the slide outline as JSON
  deckterm inspect talk.md --format json`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.present(cmd.Context(), args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, ErrUsage)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "",
		"config file (default: ./config.yaml or "+config.Dir()+"/config.yaml)")
	flags.String("theme", "", "colour theme: catppuccin-latte, catppuccin-mocha, one-dark")
	flags.BoolVar(&c.noFooter, "no-footer", false, "hide the author, position, and key help")
	flags.CountVarP(&c.verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv)")
	flags.String("log-file", "", "append logs to file")
	flags.String("log-format", "", "log format: text, json")

	_ = c.v.BindPFlag(config.KeyTheme, flags.Lookup("theme"))
	_ = c.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = c.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newInspectCmd(c), newVersionCmd())
	c.root = root
	return c
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return errors.WithHintf(errors.Mark(err, ErrUsage), "usage: %s", cmd.UseLine())
		}
		return nil
	}
}

// execute runs the command line and releases resources opened by setup.
func (c *cli) execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	c.root.SetArgs(args)
	err := c.root.ExecuteContext(ctx)
	for _, cl := range c.closers {
		if cerr := cl.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing log file")
		}
	}
	return err
}

// setup loads configuration and builds the logger. The presentation owns
// the terminal, so it logs only to --log-file; other commands log to stderr.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if cmd.Flags().Changed("no-footer") {
		c.v.Set(config.KeyFooter, !c.noFooter)
	}
	cfg, err := config.Load(c.v, c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := logging.LevelFromVerbosity(c.verbosity)
	format := logging.Format(cfg.LogFormat)
	switch {
	case cfg.LogFile != "":
		logger, closer, err := logging.OpenFile(cfg.LogFile, level, format)
		if err != nil {
			return err
		}
		c.logger = logger
		c.closers = append(c.closers, closer)
	case !cmd.HasParent():
		c.logger = logging.NewDiscard()
	default:
		c.logger = logging.New(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})
	}
	c.logger.Debug("configuration loaded", "file", c.v.ConfigFileUsed(), "theme", cfg.Theme, "preamble", cfg.Preamble)
	return nil
}

// compile reads and parses path. Failures are reported before the terminal
// is touched.
func (c *cli) compile(ctx context.Context, exp *trace.Exporter, path string) (*deck.Deck, error) {
	doc, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	policy, err := c.cfg.PreamblePolicy()
	if err != nil {
		return nil, err
	}

	d, err := exp.Compile(ctx, doc.Path, func() (*deck.Deck, error) {
		d, err := deck.Parse(doc.Text, deck.WithPreamble(policy))
		if err != nil {
			return nil, &deck.ParseError{Path: doc.Path, Err: err}
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("deck compiled", "path", doc.Path, "slides", d.Len())
	return d, nil
}

func (c *cli) present(ctx context.Context, path string) error {
	exp, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		c.logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := exp.Shutdown(sctx); err != nil {
			c.logger.Warn("flushing traces", "error", err)
		}
	}()

	d, err := c.compile(ctx, exp, path)
	if err != nil {
		return err
	}
	if err := ui.CheckTerminal(c.in, c.out); err != nil {
		return err
	}

	th, err := c.cfg.ThemeSpec()
	if err != nil {
		return err
	}
	opts := ui.Options{
		Theme:      th,
		ShowFooter: c.cfg.Footer,
		Logger:     c.logger,
	}
	if s := exp.StartSession(ctx, path, d); s != nil {
		defer s.End()
		opts.Observers = []present.Observer{s}
	}

	m, err := ui.New(d, opts)
	if err != nil {
		return err
	}
	if err := ui.Run(ctx, m, tea.WithInput(c.in), tea.WithOutput(c.out)); err != nil {
		return err
	}
	c.logger.Info("presentation ended", "slide", m.Controller.Cursor()+1, "total", d.Len())
	return nil
}
