package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/report-server/internal/config"
	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	result, err := storage.RunMigrations(env.PostgresDSN())
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
