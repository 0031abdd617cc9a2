package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgorder/internal/server"
	"github.com/matzehuels/pkgorder/pkg/cache"
	"github.com/matzehuels/pkgorder/pkg/pipeline"
)

const defaultAddr = ":8080"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	noCache       bool   // disable the order cache
	redisAddr     string // share the cache through Redis instead of files
	redisPassword string
	redisDB       int
}

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      defaultAddr,
		redisAddr: os.Getenv("PKGORDER_REDIS_ADDR"),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ordering HTTP API",
		Long: `Serve the ordering HTTP API.

Endpoints:
  POST /v1/order   {"packages": [...], "pin": [...]} → {"order": [...]}
  GET  /healthz    liveness probe

Orders are cached on disk unless --no-cache is set. With --redis-addr (or
PKGORDER_REDIS_ADDR) the cache lives in Redis and is shared by every
server pointing at it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			runner, err := c.serveRunner(cmd, opts)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			return server.New(opts.addr, runner, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the order cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis host:port for a shared order cache")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", os.Getenv("PKGORDER_REDIS_PASSWORD"), "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	return cmd
}

func (c *CLI) serveRunner(cmd *cobra.Command, opts serveOpts) (*pipeline.Runner, error) {
	if opts.noCache || opts.redisAddr == "" {
		return c.newRunner(opts.noCache)
	}
	rc, err := cache.NewRedisCache(cmd.Context(), opts.redisAddr, opts.redisPassword, opts.redisDB)
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Info("using redis cache", "addr", opts.redisAddr)
	return pipeline.NewRunner(rc, c.Logger), nil
}
