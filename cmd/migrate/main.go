// Migration runner: applies the schema (tables and indexes) to the
// database named by DATABASE_URL. Same configuration resolution and exit
// semantics as the seed loader.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/buildermart/marketplace-backend/internal/config"
	"github.com/buildermart/marketplace-backend/internal/database"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("Migration failed")
		os.Exit(1)
	}
}

func run() error {
	envPath, err := config.LoadEnvFile()
	if err != nil {
		return err
	}
	logrus.Infof("Loaded environment from %s", envPath)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return database.RunMigrations(db)
}
