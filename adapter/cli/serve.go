package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/felixgeelhaar/tascora/adapter/api"
	"github.com/spf13/cobra"
)

// ServeDeps holds what the serve command needs beyond the App handlers.
type ServeDeps struct {
	Server *api.Server
}

var serveDeps *ServeDeps

// SetServeDeps wires the HTTP server into the serve command.
func SetServeDeps(d *ServeDeps) {
	serveDeps = d
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the task API server and block until interrupted.

The listen address and timeouts come from the environment (HTTP_ADDR,
HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveDeps == nil || serveDeps.Server == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- serveDeps.Server.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-cmd.Context().Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return serveDeps.Server.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
