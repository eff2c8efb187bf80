package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arytiwari/jioastro-sub006/internal/api"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Host  string
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JioAstro HTTP API server",
		Long: `Start a local HTTP server exposing the catalog and timing engine.

The server provides:
- POST /api/analysis for normalizing detection feeds
- GET /api/yogas for catalog search and lookup
- POST /api/timeline for activation timelines
- GET /api/coverage and /api/review for catalog operations

When the alias overlay file changes the registry is rebuilt and
hot-swapped without a restart.`,
		Example: `  # Start on the configured host and port
  jioastro serve

  # Start on a custom port
  jioastro serve --port 9000

  # Disable overlay watching
  jioastro serve --watch=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "Host to bind (default: 127.0.0.1)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8777)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the alias overlay for changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := cmdCtx.Cfg
	srvCfg := cfg.GetServer()

	// CLI flags override config file
	host := srvCfg.Host
	if opts.Host != "" {
		host = opts.Host
	}

	port := srvCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	watch := srvCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	server := api.NewServer(api.Config{
		Engine:      cmdCtx.Engine,
		Host:        host,
		Port:        port,
		Watch:       watch,
		OverlayPath: cfg.Overlay,
		Logger:      cmdCtx.Logger,
	})

	r := cmdCtx.Renderer
	r.Printf("Serving on http://%s:%d\n", host, port)
	if watch && cfg.Overlay != "" {
		r.Muted(fmt.Sprintf("Watching %s for overlay changes", cfg.Overlay))
	}
	r.Muted("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
