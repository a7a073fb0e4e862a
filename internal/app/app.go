package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	store    *session.Store
	jwt      *config.JWT
	limits   *config.Limits
	ws       *config.WebSocket
	sessions *config.Sessions
	basePath string
}

func New(logger *slog.Logger) *App {
	router := http.NewServeMux()

	app := &App{
		logger: logger,
		router: router,
	}

	return app
}

func (a *App) loadConfig() error {
	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to load jwt config: %w", err)
	}
	a.jwt = jwt

	limits, err := config.NewLimits()
	if err != nil {
		return fmt.Errorf("unable to load game limits: %w", err)
	}
	a.limits = limits

	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to load websocket config: %w", err)
	}
	a.ws = ws

	sessions, err := config.NewSessions()
	if err != nil {
		return fmt.Errorf("unable to load session config: %w", err)
	}
	a.sessions = sessions

	a.basePath = config.BasePath()
	a.store = session.NewStore(a.logger, sessions.TTL, sessions.Max)

	return nil
}

func (a *App) Handler() http.Handler {
	a.loadRoutes()

	return middleware.Wrap(
		a.router,
		middleware.Auth(a.jwt),
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	addr := config.Addr()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.store.Run(ctx, a.sessions.SweepInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
