package main

import (
	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/database"
	"github.com/hebatacademy/certify/internal/env"
	"github.com/hebatacademy/certify/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Trainer{},
		&model.Program{},
		&model.CertificateTemplate{},
		&model.Certificate{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
