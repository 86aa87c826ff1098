package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/report-server/api"
	"github.com/carson-networks/report-server/internal/config"
	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("report-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	if envConfig.RunMigrations {
		result, err := storage.RunMigrations(envConfig.PostgresDSN())
		if err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("Migration status")
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	svc := service.NewService(dbStorage)
	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.ServerWorkers)
	delegator.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.ServerPort,
			Storage:  dbStorage,
			Service:  svc,
			Operator: delegator,
		}
		return httpRest.Serve(ctx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("report-server stopped with error")
	}
	delegator.Stop()
	logger.Info("report-server stopped")
}
