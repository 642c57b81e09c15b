package repository

import (
	"context"

	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository struct {
	*baseRepository
}

func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, certificate *model.Certificate) (*model.Certificate, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Create(certificate).Error; err != nil {
		return certificate, err
	}

	return certificate, nil
}

// Upsert inserts the certificate or, when the number already exists, refreshes
// the rendered artifact URLs and status. Re-running a batch must not duplicate
// rows.
func (cr CertificateRepository) Upsert(ctx context.Context, tx *gorm.DB, certificate *model.Certificate) (*model.Certificate, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"pdf_url", "qr_code_url", "status", "updated_at"}),
	}).Create(certificate).Error; err != nil {
		return certificate, err
	}

	return certificate, nil
}

func (cr CertificateRepository) GetByNumber(ctx context.Context, tx *gorm.DB, number string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by number: %s", number)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{Number: number}).
		Preload("Program").Preload("Program.Trainer").First(&certificate).Error; err != nil {
		return &certificate, err
	}

	return &certificate, nil
}

func (cr CertificateRepository) GetByProgramId(ctx context.Context, tx *gorm.DB, programId string, page, pageSize uint) ([]model.Certificate, int64, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if page == 0 {
		page = 1
	}

	var certificates []model.Certificate
	total := int64(0)

	where := model.Certificate{ProgramID: programId}
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(where).Count(&total).Error; err != nil {
		return certificates, total, err
	}

	query := db.WithContext(ctx).Model(&model.Certificate{}).Where(where).Order("created_at desc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&certificates).Error; err != nil {
		return certificates, total, err
	}

	return certificates, total, nil
}

func (cr CertificateRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, number string, status constant.CertificateStatus) error {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{Number: number}).
		Update("status", status).Error
}

func (cr CertificateRepository) UpdateURLs(ctx context.Context, tx *gorm.DB, number, pdfUrl, qrCodeUrl string) error {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{Number: number}).
		Updates(map[string]any{
			"pdf_url":     pdfUrl,
			"qr_code_url": qrCodeUrl,
			"status":      constant.CertificateStatusGenerated,
		}).Error
}
