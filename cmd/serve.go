package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/keikurono7/major-project/internal/httpapi"
	"github.com/keikurono7/major-project/internal/llm"
	"github.com/keikurono7/major-project/internal/quizgen"
	"github.com/keikurono7/major-project/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		logger := newLogger(cmd)

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		provider, err := llm.NewProvider(ctx, llm.DiscoverConfig(), logger)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		manager := session.NewManager(st.ProgressRepo(), st.ContentRepo(),
			quizgen.NewLLMGenerator(provider), st.HistoryRepo(), session.Config{Logger: logger})

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpapi.NewServer(st.ProgressRepo(), st.ContentRepo(), manager, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
