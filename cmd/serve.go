package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matheuskafuri/headlines/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard as a web page",
	Long: `Start a local web server that shows the headlines as a card grid with a search box.

The headlines are fetched once, in the background, when the server starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		board := web.NewBoard()
		go board.Load(ctx, e.client, e.logger)

		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{
			Addr:              flagAddr,
			Handler:           web.NewRouter(web.NewHandler(board, e.logger)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		e.logger.Info("serving dashboard", zap.String("addr", flagAddr))
		fmt.Fprintf(cmd.OutOrStdout(), "Serving headlines on http://%s\n", flagAddr)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "127.0.0.1:8080", "listen address")
}
