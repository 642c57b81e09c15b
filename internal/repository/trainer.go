package repository

import (
	"context"

	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/model"
	"gorm.io/gorm"
)

type TrainerRepository struct {
	*baseRepository
}

func (tr TrainerRepository) Create(ctx context.Context, tx *gorm.DB, trainer *model.Trainer) (*model.Trainer, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Trainer{}).Create(trainer).Error; err != nil {
		return trainer, err
	}

	return trainer, nil
}

func (tr TrainerRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Trainer, error) {
	tr.logger.Debugf("Get trainer by id: %s", id)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var trainer model.Trainer
	if err := db.WithContext(ctx).Model(&model.Trainer{}).Where(model.Trainer{
		BaseModel: model.BaseModel{ID: id},
	}).First(&trainer).Error; err != nil {
		return &trainer, err
	}

	return &trainer, nil
}

func (tr TrainerRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.Trainer, int64, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var trainers []model.Trainer
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.Trainer{}).Count(&total).Error; err != nil {
		return trainers, total, err
	}

	query := db.WithContext(ctx).Model(&model.Trainer{}).Order("created_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&trainers).Error; err != nil {
		return trainers, total, err
	}

	return trainers, total, nil
}
