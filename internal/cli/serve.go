package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/server"
)

// serveCommand creates the serve command for the HTTP deck server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP deck server",
		Long: `Run the HTTP deck server.

Each visitor gets a session with its own navigation state. The device profile
is detected from request headers when the session is created.`,
		Example: `  # Serve on the default address
  folio serve

  # Serve on a custom address
  folio serve --addr :9000 --config folio.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and FOLIO_ADDR)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	printInfo("Serving %s sections on %s", StyleNumber.Render(strconv.Itoa(len(cfg.Sections))), StyleHighlight.Render(cfg.Server.Addr))
	printDetail("press ctrl+c to stop")

	prog := newProgress(logger)
	err = srv.Run(ctx)
	prog.done("Server stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
