package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cyphera/taxjar-go/internal/logger"
	"github.com/cyphera/taxjar-go/internal/sandbox"
)

const defaultSandboxKey = "sandbox-key"

func newSandboxCmd(a *app) *cobra.Command {
	var addr, apiKey string

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Serve a local fake of the TaxJar API backed by fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serveSandbox(ctx, cmd, addr, apiKey)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8089", "listen address")
	cmd.Flags().StringVar(&apiKey, "key", defaultSandboxKey, "API token the sandbox accepts")
	return cmd
}

func serveSandbox(ctx context.Context, cmd *cobra.Command, addr, apiKey string) error {
	gin.SetMode(gin.ReleaseMode)
	fake := sandbox.New(apiKey, sandbox.WithLogger(logger.With(zap.String("component", "sandbox"))))

	server := &http.Server{
		Addr:              addr,
		Handler:           fake.Handler(),
		ReadHeaderTimeout: 20 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Sandbox starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Sandbox listening on http://%s/v2/ (key %q)\n", addr, apiKey)

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrap(err, "sandbox failed to start")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down sandbox")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "sandbox forced to shutdown")
	}
	return nil
}
