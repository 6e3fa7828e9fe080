package main

import (
	"github.com/rs/zerolog"
	"github.com/ula-apps/appstartup/internal/catalog"
	"github.com/ula-apps/appstartup/internal/config"
	"github.com/ula-apps/appstartup/internal/db"
	"github.com/ula-apps/appstartup/internal/logging"
)

// appsEnv holds what every command needs: config, a logger and the record store.
type appsEnv struct {
	config  *config.AppsConfig
	logger  *zerolog.Logger
	db      *db.Database
	closeDB func() error
}

func newAppsEnv() (*appsEnv, error) {
	appsConfig, err := config.NewAppsConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(appsConfig.LogLevel())

	database, closeDB, err := db.NewDatabase(appsConfig.DBPath(), logger)
	if err != nil {
		return nil, err
	}

	return &appsEnv{
		config:  appsConfig,
		logger:  logger,
		db:      database,
		closeDB: closeDB,
	}, nil
}

func (e *appsEnv) catalog() (*catalog.Catalog, error) {
	return catalog.Load(e.config.CatalogPath())
}

func (e *appsEnv) Close() {
	err := e.closeDB()
	if err != nil {
		e.logger.Error().Err(err).Msg("error closing database")
	}
}
