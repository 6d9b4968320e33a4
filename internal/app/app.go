package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/article-publisher/config"
	"github.com/daniilsolovey/article-publisher/internal/db"
	"github.com/daniilsolovey/article-publisher/internal/event"
	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	"github.com/daniilsolovey/article-publisher/internal/rest"
	"github.com/daniilsolovey/article-publisher/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc/"

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Manager *newsportal.Manager
	Config  *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	database := db.New(dbConnect)
	bus := event.NewBus(logger)
	manager := newsportal.NewManager(database, bus, logger)

	e := rest.NewArticleHandler(manager, logger).RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	a := &App{
		DB:      database,
		Logger:  logger,
		Echo:    e,
		Manager: manager,
		Config:  cfg,
	}
	a.registerHooks(bus)

	return a
}

// registerHooks subscribes the built-in lifecycle listeners.
func (a *App) registerHooks(bus *event.Bus) {
	bus.Subscribe(newsportal.EventContentPublished, func(ctx context.Context, payload any) error {
		data, ok := payload.(*newsportal.ContentPublished)
		if !ok {
			return fmt.Errorf("unexpected payload %T", payload)
		}

		a.Logger.InfoContext(ctx, "content published",
			"articleId", data.ContentID,
			"scope", data.Article.Scope,
			"bytes", len(data.Content),
		)
		return nil
	})
}

func (a *App) Run(ctx context.Context, port int) error {
	if err := a.DB.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.Info("service started", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.DB.Close())
}
