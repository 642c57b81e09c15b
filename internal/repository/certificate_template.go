package repository

import (
	"context"

	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/model"
	"gorm.io/gorm"
)

type CertificateTemplateRepository struct {
	*baseRepository
}

func (ctr CertificateTemplateRepository) Create(ctx context.Context, tx *gorm.DB, template *model.CertificateTemplate) (*model.CertificateTemplate, error) {
	db := ctr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Create(template).Error; err != nil {
		return template, err
	}

	return template, nil
}

func (ctr CertificateTemplateRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.CertificateTemplate, error) {
	ctr.logger.Debugf("Get certificate template by id: %s", id)

	db := ctr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var template model.CertificateTemplate
	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Where(model.CertificateTemplate{
		BaseModel: model.BaseModel{ID: id},
	}).First(&template).Error; err != nil {
		return &template, err
	}

	return &template, nil
}

func (ctr CertificateTemplateRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.CertificateTemplate, int64, error) {
	db := ctr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var templates []model.CertificateTemplate
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Count(&total).Error; err != nil {
		return templates, total, err
	}

	query := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Order("created_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&templates).Error; err != nil {
		return templates, total, err
	}

	return templates, total, nil
}

func (ctr CertificateTemplateRepository) Update(ctx context.Context, tx *gorm.DB, template *model.CertificateTemplate) error {
	db := ctr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.CertificateTemplate{}).Where(model.CertificateTemplate{
		BaseModel: model.BaseModel{ID: template.ID},
	}).Updates(template).Error
}

func (ctr CertificateTemplateRepository) DeleteById(ctx context.Context, tx *gorm.DB, id string) error {
	db := ctr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where(model.CertificateTemplate{
		BaseModel: model.BaseModel{ID: id},
	}).Delete(&model.CertificateTemplate{}).Error
}
