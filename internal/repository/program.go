package repository

import (
	"context"

	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/model"
	"gorm.io/gorm"
)

type ProgramRepository struct {
	*baseRepository
}

func (pr ProgramRepository) Create(ctx context.Context, tx *gorm.DB, program *model.Program) (*model.Program, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Program{}).Create(program).Error; err != nil {
		return program, err
	}

	return program, nil
}

func (pr ProgramRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Program, error) {
	pr.logger.Debugf("Get program by id: %s", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var program model.Program
	if err := db.WithContext(ctx).Model(&model.Program{}).Where(model.Program{
		BaseModel: model.BaseModel{ID: id},
	}).Preload("Trainer").First(&program).Error; err != nil {
		return &program, err
	}

	return &program, nil
}

func (pr ProgramRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.Program, int64, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var programs []model.Program
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.Program{}).Count(&total).Error; err != nil {
		return programs, total, err
	}

	query := db.WithContext(ctx).Model(&model.Program{}).Preload("Trainer").Order("created_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&programs).Error; err != nil {
		return programs, total, err
	}

	return programs, total, nil
}
