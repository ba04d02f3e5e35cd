package cli

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/deck"
	"github.com/matzehuels/folio/pkg/errors"
)

// defaultDebugLog receives log output of present -v while the deck owns the
// terminal.
const defaultDebugLog = "folio-debug.log"

// presentCommand creates the present command for the terminal deck.
func (c *CLI) presentCommand() *cobra.Command {
	var (
		configPath string
		logFile    string
		touch      bool
	)

	cmd := &cobra.Command{
		Use:   "present",
		Short: "Present the deck in the terminal",
		Long: `Present the deck full-screen in the terminal.

Navigate with ←/→ (or h/l), jump with 1-9, return home with g and quit with q.
The mouse wheel scrolls the active section; dragging horizontally swipes.

Terminals report no touch capability, so the desktop settle delay is used
unless --touch is given or the terminal runs under Termux.

Log output would corrupt the full-screen display, so it is dropped while the
deck runs. With --verbose it is appended to --log-file instead.`,
		Example: `  # Present the built-in deck
  folio present

  # Present your own sections with touch timings
  folio present --config folio.toml --touch

  # Follow navigation events from a second terminal
  folio present -v --log-file /tmp/folio.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPresent(cmd.Context(), configPath, logFile, touch)
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().BoolVar(&touch, "touch", false, "use the touch-primary profile")
	cmd.Flags().StringVar(&logFile, "log-file", defaultDebugLog, "file receiving verbose logs while presenting")

	return cmd
}

func (c *CLI) runPresent(ctx context.Context, configPath, logFile string, touch bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(configPath)
	if err != nil {
		return err
	}

	profile := deck.Detect(terminalEnvironment())
	if touch {
		profile.TouchPrimary = true
	}
	logger.Debug("presenting deck", "profile", profile, "delay", profile.SettleDelay(cfg.Timings()))

	restore, err := c.detachLogger(logFile)
	if err != nil {
		return err
	}
	defer restore()

	model, err := NewDeckModel(cfg, DeckOptions{
		Profile: profile,
		Logger:  logger,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// detachLogger moves the CLI's log output off the terminal while the
// alt-screen owns it. At debug level records are appended to path, otherwise
// they are dropped. The returned func points the logger back at the terminal.
func (c *CLI) detachLogger(path string) (restore func(), err error) {
	l := c.Logger
	prefix := l.GetPrefix()

	if l.GetLevel() > log.DebugLevel {
		l.SetOutput(io.Discard)
		return func() { l.SetOutput(c.out) }, nil
	}

	f, err := tea.LogToFileWith(path, appName, l)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open debug log %s", path)
	}
	// Hook loggers copy their parent's output when installed.
	installLogHooks(l)

	return func() {
		l.SetOutput(c.out)
		l.SetPrefix(prefix)
		installLogHooks(l)
		_ = f.Close()
	}, nil
}
