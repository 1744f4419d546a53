package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/requestid"
	"github.com/dmitrymomot/requestid/pkg/config"
	"github.com/dmitrymomot/requestid/pkg/httpserver"
	"github.com/dmitrymomot/requestid/pkg/logger"
)

type appConfig struct {
	Server    httpserver.Config
	Log       logger.Config
	RequestID requestid.Config
}

func main() {
	cfg := config.MustLoad[appConfig]()

	log := logger.NewFromConfig(cfg.Log,
		logger.WithAttr(slog.String("service", "requestid-demo")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(cfg.RequestID, log)); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
