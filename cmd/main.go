// Package main wires the HTTP server for the request approval service.
package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"request-approvals/config"
	"request-approvals/internal/directory"
	api "request-approvals/internal/oapi"
	"request-approvals/internal/repository"
	"request-approvals/internal/transport/http/middleware"
	"request-approvals/internal/transport/http/server/handlers-fiber"
	"request-approvals/internal/usecase"
	"request-approvals/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dir, err := directory.Load(cfg.Directory.File, log)
	if err != nil {
		log.Errorw("directory initialization error", "error", err)
		return
	}

	repo, err := repository.New(cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Repository.Backend, "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, repo, dir, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          handlers_fiber.ErrorHandler,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlersWithOptions(serv, h, api.FiberServerOptions{
		Middlewares: []fiber.Handler{middleware.Identity(log, uc)},
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
		return serv.Listen(cfg.ServerAddr())
	})
	g.Go(func() error {
		<-gctx.Done()
		stop()
		if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("server stopped with error", "error", err)
	}
}
