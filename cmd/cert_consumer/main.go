package main

import (
	"context"
	"errors"
	"time"

	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/database"
	"github.com/hebatacademy/certify/internal/env"
	filestorage "github.com/hebatacademy/certify/internal/file_storage"
	"github.com/hebatacademy/certify/internal/mailer"
	"github.com/hebatacademy/certify/internal/model"
	"github.com/hebatacademy/certify/internal/queue"
	"github.com/hebatacademy/certify/internal/repository"
	"github.com/hebatacademy/certify/internal/util"
	"github.com/hebatacademy/certify/pkg/certgen"
	"gorm.io/gorm"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const MAX_WORKERS = 3

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}
	logger.Info("Minio connected \n")
	storage := filestorage.NewMinioStorage(s3, &cfg.Minio, logger)

	fonts, err := certgen.NewFontLoader(cfg.Render.FontMetadataPath)
	if err != nil {
		logger.Panic(err)
	}

	opts := certgen.NewDefaultOptions(cfg.App.BaseURL)
	opts.CertificateBucket = cfg.Minio.CertificateBucket
	opts.QRCodeBucket = cfg.Minio.QRCodeBucket
	opts.FontMetadataPath = cfg.Render.FontMetadataPath
	opts.TmpDir = util.GetTempDir()

	compositor := certgen.NewCompositor(opts, fonts, nil, logger)
	generator := certgen.NewGenerator(opts, compositor, storage, logger)

	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	repo := repository.NewRepository(db, logger)
	app := queue.ConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		Generator:  generator,
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	if err := rabbitMQ.ConsumeCertificateGenerateJob(certificateGenerateJobHandler, MAX_WORKERS, &app); err != nil {
		logger.Fatalf("Failed to consume certificate generate job: %v", err)
	}

	logger.Infof("Started consuming certificate generate job with %d workers", MAX_WORKERS)

	// Block forever to keep the consumer running
	select {}
}

// Return shouldRequeue, err
func certificateGenerateJobHandler(jobPayload queue.CertificateGeneratePayload, app *queue.ConsumerContext) (bool, error) {
	ctx := context.Background()

	var queueWaitDuration string
	createdAtTime, err := time.Parse(time.RFC3339, jobPayload.CreatedAt)
	if err != nil {
		app.Logger.Errorf("Failed to parse created_at time: %v", err)
		queueWaitDuration = "unknown"
	} else {
		queueWaitDuration = time.Since(createdAtTime).String()
	}

	if len(jobPayload.Items) == 0 {
		app.Logger.Error("Batch payload contains no certificates")
		return false, errors.New("batch payload contains no certificates")
	}

	template, err := app.Repository.Template.GetById(ctx, nil, jobPayload.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			app.Logger.Error("Template not found: ", jobPayload.TemplateID)
			return false, errors.New("certificate template not found")
		}
		app.Logger.Error("Failed to get template: ", err)
		return true, err
	}

	generateStart := time.Now()
	results := app.Generator.GenerateBatch(ctx, template.ToRenderTemplate(), jobPayload.Items)
	generateDuration := time.Since(generateStart)

	failed := 0
	for i, result := range results {
		item := jobPayload.Items[i]

		status := constant.CertificateStatusGenerated
		if result.Error != "" {
			status = constant.CertificateStatusFailed
			failed++
		}

		if _, err := app.Repository.Certificate.Upsert(ctx, nil, &model.Certificate{
			Number:            item.CertificateNumber,
			ProgramID:         jobPayload.ProgramID,
			TemplateID:        jobPayload.TemplateID,
			RecipientName:     item.RecipientName,
			RecipientCompany:  item.RecipientCompany,
			RecipientPosition: item.RecipientPosition,
			RecipientEmail:    item.RecipientEmail,
			CompletionDate:    item.CompletionDate,
			PDFURL:            result.PDFURL,
			QRCodeURL:         result.QRCodeURL,
			Status:            status,
		}); err != nil {
			app.Logger.Errorf("Failed to save certificate %s: %v", item.CertificateNumber, err)
			return true, err
		}

		sendIssuedMail(app, item, result)
	}

	app.Logger.Infof("Generated %d certificates (%d failed) for template %s in %s, queue wait %s",
		len(results), failed, jobPayload.TemplateID, generateDuration, queueWaitDuration)
	return false, nil
}

func sendIssuedMail(app *queue.ConsumerContext, item certgen.CertificateData, result certgen.Result) {
	if item.RecipientEmail == "" || result.Error != "" {
		return
	}

	vars := struct {
		RecipientName     string
		ProgramTitle      string
		CertificateNumber string
		PDFURL            string
		VerificationURL   string
	}{
		RecipientName:     item.RecipientName,
		ProgramTitle:      item.ProgramTitle,
		CertificateNumber: item.CertificateNumber,
		PDFURL:            result.PDFURL,
		VerificationURL:   certgen.VerificationURL(app.Config.App.BaseURL, item.CertificateNumber),
	}

	if _, err := app.Mailer.Send(mailer.CERTIFICATE_ISSUED_TEMPLATE, item.RecipientName, item.RecipientEmail, vars); err != nil {
		app.Logger.Errorf("Failed to send issued-certificate mail to %s: %v", item.RecipientEmail, err)
	}
}
