// Command todoform serves the todo form controller over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/formapi"
	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/todo"
)

func main() {
	if err := run(); err != nil {
		slog.Error("todoform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer b.close()
	log.InfoContext(ctx, "form store ready", logger.Store(cfg.Store))

	codec, err := form.CodecByName(cfg.PersistFormat)
	if err != nil {
		return err
	}

	submitter := todo.Submitter{Delay: cfg.SubmitDelay, Logger: log}
	ctrl, err := todo.New(submitter.Submit, cfg.Persist,
		form.WithStore(b.store),
		form.WithCodec(codec),
		form.WithLogger(log),
		form.WithSubmitErrorHandler(func(ctx context.Context, err error) {
			log.WarnContext(ctx, "todo submission failed", logger.Error(err))
		}),
	)
	if err != nil {
		return err
	}

	api := formapi.New(ctrl,
		formapi.WithStore(b.store),
		formapi.WithStatusFunc(todo.ValidateStatus),
		formapi.WithLogger(log),
		formapi.WithHealthChecks(b.checks...),
		formapi.WithOptions(map[string]any{
			todo.FieldState: todo.StateOptions,
			todo.FieldRadio: todo.RadioOptions,
		}),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(func(ctx context.Context) error {
			defer ctrl.Close()
			return ctrl.Wait(ctx)
		}),
	)
	return srv.Run(ctx, api.Handler())
}
