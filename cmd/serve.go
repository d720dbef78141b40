package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"morse_translator/server/http_server"
)

func (c *cli) newServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		Long: `Serve translations over HTTP.

POST /translate translates the request body. The query parameters
sentence_delimiter, word_boundary, unknown and direction override the
configured values for one request. GET /table lists the code table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return http_server.Serve(ctx, c.settings, nil)
		},
	}
	bindServeFlags(c.v, serveCmd)
	return serveCmd
}
