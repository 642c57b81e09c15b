package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/database"
	"github.com/hebatacademy/certify/internal/env"
	"github.com/hebatacademy/certify/internal/model"
	"github.com/hebatacademy/certify/internal/repository"
	"github.com/hebatacademy/certify/internal/util"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv(".env")
}

// Seeds the bootstrap admin account and prints a token pair for it, so a
// fresh deployment can call the admin endpoints before any external identity
// provider is wired up.
func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	email := env.GetString("SEED_ADMIN_EMAIL", "admin@hebat.id")
	password := env.GetString("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		logger.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()

	repo := repository.NewRepository(db, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)

	ctx := context.Background()

	user, err := repo.User.GetByEmail(ctx, nil, email)
	switch {
	case err == nil:
		logger.Infof("Admin user %s already exists", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = repo.User.Create(ctx, nil, &model.User{
			Email:     email,
			Password:  password,
			FirstName: "Admin",
			Role:      constant.UserRoleAdmin,
		})
		if err != nil {
			logger.Panic(err)
		}
		logger.Infof("Created admin user %s", email)
	default:
		logger.Panic(err)
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:    user.ID,
		Email: user.Email,
		Name:  strings.TrimSpace(user.FirstName + " " + user.LastName),
		Role:  user.Role,
	})
	if err != nil {
		logger.Panic(err)
	}

	fmt.Printf("Access token:\n%s\n\nRefresh token:\n%s\n", *accessToken, *refreshToken)
}
