package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isotile/internal/server"
	"github.com/matzehuels/isotile/pkg/cache"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		maxTiles int
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and images over HTTP",
		Long: `Serve layouts and images over HTTP.

Routes:
  GET /healthz                 liveness and version
  GET /layouts/COUNT           layout record as JSON
  GET /layouts/COUNT.png       rendered image (also .svg, .pdf, .json)

Image routes accept ?fill=rrggbbaa and ?outline=true. Rendered artifacts are
cached like the render command's.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if maxTiles == 0 {
				maxTiles = c.Config.Server.MaxTiles
			}
			return c.runServe(cmd.Context(), addr, maxTiles, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: :8080)")
	cmd.Flags().IntVar(&maxTiles, "max-tiles", 0, "largest tile count a request may ask for (default from config: 1000)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, maxTiles int, noCache bool) error {
	if maxTiles < 1 {
		return fmt.Errorf("max-tiles must be positive, got %d", maxTiles)
	}

	runner, err := c.newServeRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(server.Options{
		Addr:      addr,
		MaxTiles:  maxTiles,
		TileWidth: c.Config.Render.TileWidth,
		TileEdge:  c.Config.Render.TileEdge,
		Fill:      c.Config.Render.Fill,
	}, runner, loggerFromContext(ctx))

	printInfo("Serving on %s", addr)
	printNextStep("Try", fmt.Sprintf("curl http://localhost%s/layouts/37", addr))
	return srv.Run(ctx)
}

// newServeRunner creates the server's runner. Its artifact keys carry the
// serve prefix so a shared cache keeps them apart from render output.
func (c *CLI) newServeRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	return c.newRunner(ctx, noCache, cache.NewScopedKeyer(cache.NewDefaultKeyer(), serveKeyPrefix))
}
