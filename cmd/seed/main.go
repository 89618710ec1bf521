// Seed loader: populates a fresh database with fixture rows for manual
// testing. Exits 0 on success, 1 on missing configuration or any failure
// during seeding.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/buildermart/marketplace-backend/internal/config"
	"github.com/buildermart/marketplace-backend/internal/database"
	"github.com/buildermart/marketplace-backend/internal/database/seeds"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("Seed failed")
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

	return seeds.Run(db)
}
