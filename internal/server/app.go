// Package server runs the analysis proxy: the one server-side piece of
// MoodMate. It accepts journal text from the client, forwards it to the
// language-model API with the analysis prompt, and normalizes the reply.
// It keeps no state of its own.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodmate/internal/logging"
)

type App struct {
	config *Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *Config) (*App, error) {
	if c.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	completer := NewOpenAIClient(c.OpenAIBaseURL, c.OpenAIAPIKey, c.Model)
	handler := NewHandler(completer, logger)

	mux := http.NewServeMux()
	handler.Routes(mux)

	return &App{
		config: c,
		logger: logger,
		server: &http.Server{Addr: c.Addr, Handler: mux},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or an interrupt arrives, then shuts
// down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "analysis proxy listening", "addr", app.config.Addr, "model", app.config.Model)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	app.logger.Info(shutdownCtx, "shutting down")
	return app.server.Shutdown(shutdownCtx)
}
