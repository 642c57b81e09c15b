package repository

import (
	"context"

	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) (*model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s", email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(model.User{Email: email}).First(&user).Error; err != nil {
		return &user, err
	}

	return &user, nil
}

