package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/mailer"
	"github.com/hebatacademy/certify/internal/model"
	"github.com/hebatacademy/certify/internal/queue"
	"github.com/hebatacademy/certify/internal/util"
	"github.com/hebatacademy/certify/pkg/certgen"
	"gorm.io/gorm"
)

const (
	ErrTemplateIdRequired        = "template id is required"
	ErrTemplateNotFound          = "certificate template not found"
	ErrCertificateNumberRequired = "certificate number is required"
	ErrCertificateNotFound       = "certificate not found"
	ErrBatchEmpty                = "batch contains no certificates"
)

type CertificateController struct {
	*baseController
}

type generateCertificateRequest struct {
	TemplateID string                  `json:"templateId" binding:"strNotEmpty"`
	ProgramID  string                  `json:"programId"`
	Data       certgen.CertificateData `json:"data" binding:"required"`
}

type generateBatchRequest struct {
	TemplateID string                    `json:"templateId" binding:"strNotEmpty"`
	ProgramID  string                    `json:"programId"`
	Items      []certgen.CertificateData `json:"items" binding:"required"`
}

// fillFromProgram copies program facts into data fields the client left
// empty, so batch payloads only need per-recipient fields.
func fillFromProgram(data *certgen.CertificateData, program *model.Program) {
	if program == nil || program.ID == "" {
		return
	}

	if data.ProgramTitle == "" {
		data.ProgramTitle = program.Title
	}
	if data.ProgramStartDate == "" {
		data.ProgramStartDate = program.StartDate
	}
	if data.ProgramEndDate == "" {
		data.ProgramEndDate = program.EndDate
	}
	if data.TrainerName == "" {
		data.TrainerName = program.Trainer.Name
	}
	if data.TrainerLevel == "" {
		data.TrainerLevel = program.Trainer.Level
	}
}

func (cc CertificateController) prepareBatch(ctx *gin.Context, templateId, programId string, items []certgen.CertificateData) (*model.CertificateTemplate, *model.Program, []certgen.CertificateData, error) {
	template, err := cc.app.Repository.Template.GetById(ctx, nil, templateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, errors.New(ErrTemplateNotFound)
		}
		return nil, nil, nil, err
	}

	var program *model.Program
	if programId != "" {
		program, err = cc.app.Repository.Program.GetById(ctx, nil, programId)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, err
		}
	}

	for i := range items {
		fillFromProgram(&items[i], program)

		if items[i].CertificateNumber == "" {
			number, err := util.GenerateCertificateNumber()
			if err != nil {
				return nil, nil, nil, err
			}
			items[i].CertificateNumber = number
		}
	}

	return template, program, items, nil
}

func (cc CertificateController) persistResult(ctx *gin.Context, templateId, programId string, data certgen.CertificateData, result certgen.Result) error {
	status := constant.CertificateStatusGenerated
	if result.Error != "" {
		status = constant.CertificateStatusFailed
	}

	_, err := cc.app.Repository.Certificate.Upsert(ctx, nil, &model.Certificate{
		Number:            data.CertificateNumber,
		ProgramID:         programId,
		TemplateID:        templateId,
		RecipientName:     data.RecipientName,
		RecipientCompany:  data.RecipientCompany,
		RecipientPosition: data.RecipientPosition,
		RecipientEmail:    data.RecipientEmail,
		CompletionDate:    data.CompletionDate,
		PDFURL:            result.PDFURL,
		QRCodeURL:         result.QRCodeURL,
		Status:            status,
	})
	return err
}

func (cc CertificateController) sendIssuedMail(data certgen.CertificateData, result certgen.Result) {
	if data.RecipientEmail == "" || result.Error != "" {
		return
	}

	vars := struct {
		RecipientName     string
		ProgramTitle      string
		CertificateNumber string
		PDFURL            string
		VerificationURL   string
	}{
		RecipientName:     data.RecipientName,
		ProgramTitle:      data.ProgramTitle,
		CertificateNumber: data.CertificateNumber,
		PDFURL:            result.PDFURL,
		VerificationURL:   certgen.VerificationURL(cc.app.Config.App.BaseURL, data.CertificateNumber),
	}

	go func() {
		if _, err := cc.app.Mailer.Send(mailer.CERTIFICATE_ISSUED_TEMPLATE, data.RecipientName, data.RecipientEmail, vars); err != nil {
			cc.app.Logger.Errorf("Failed to send issued-certificate mail to %s: %v", data.RecipientEmail, err)
		}
	}()
}

// GenerateCertificate renders a single certificate synchronously and returns
// the stored artifact URLs.
func (cc CertificateController) GenerateCertificate(ctx *gin.Context) {
	var req generateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	template, _, items, err := cc.prepareBatch(ctx, req.TemplateID, req.ProgramID, []certgen.CertificateData{req.Data})
	if err != nil {
		code := http.StatusInternalServerError
		if err.Error() == ErrTemplateNotFound {
			code = http.StatusNotFound
		}
		util.ResponseFailed(ctx, code, "Failed to prepare certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	data := items[0]
	result, err := cc.app.Generator.Generate(ctx, template.ToRenderTemplate(), data)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.persistResult(ctx, template.ID, req.ProgramID, data, *result); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	cc.sendIssuedMail(data, *result)

	util.ResponseSuccess(ctx, gin.H{"certificate": result})
}

// GenerateBatch renders a batch of certificates in one request. Items fail
// independently; the response carries a result per input row in order.
func (cc CertificateController) GenerateBatch(ctx *gin.Context) {
	var req generateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(req.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Batch is empty", util.GenerateErrorMessages(errors.New(ErrBatchEmpty), "items"), nil)
		return
	}

	template, _, items, err := cc.prepareBatch(ctx, req.TemplateID, req.ProgramID, req.Items)
	if err != nil {
		code := http.StatusInternalServerError
		if err.Error() == ErrTemplateNotFound {
			code = http.StatusNotFound
		}
		util.ResponseFailed(ctx, code, "Failed to prepare batch", util.GenerateErrorMessages(err), nil)
		return
	}

	results := cc.app.Generator.GenerateBatch(ctx, template.ToRenderTemplate(), items)

	for i, result := range results {
		if err := cc.persistResult(ctx, template.ID, req.ProgramID, items[i], result); err != nil {
			cc.app.Logger.Errorf("Failed to save certificate %s: %v", items[i].CertificateNumber, err)
		}
		cc.sendIssuedMail(items[i], result)
	}

	util.ResponseSuccess(ctx, gin.H{"results": results})
}

// EnqueueBatch publishes the batch to rabbitmq and returns immediately.
// Certificates are stored as pending until the consumer renders them.
func (cc CertificateController) EnqueueBatch(ctx *gin.Context) {
	if cc.app.Queue == nil {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Async generation is not available", nil, nil)
		return
	}

	var req generateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(req.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Batch is empty", util.GenerateErrorMessages(errors.New(ErrBatchEmpty), "items"), nil)
		return
	}

	template, _, items, err := cc.prepareBatch(ctx, req.TemplateID, req.ProgramID, req.Items)
	if err != nil {
		code := http.StatusInternalServerError
		if err.Error() == ErrTemplateNotFound {
			code = http.StatusNotFound
		}
		util.ResponseFailed(ctx, code, "Failed to prepare batch", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	for _, item := range items {
		_, err := cc.app.Repository.Certificate.Upsert(ctx, nil, &model.Certificate{
			Number:            item.CertificateNumber,
			ProgramID:         req.ProgramID,
			TemplateID:        template.ID,
			RecipientName:     item.RecipientName,
			RecipientCompany:  item.RecipientCompany,
			RecipientPosition: item.RecipientPosition,
			RecipientEmail:    item.RecipientEmail,
			CompletionDate:    item.CompletionDate,
			Status:            constant.CertificateStatusPending,
		})
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save pending certificates", util.GenerateErrorMessages(err), nil)
			return
		}
	}

	payload := queue.CertificateGeneratePayload{
		TemplateID:  template.ID,
		ProgramID:   req.ProgramID,
		Items:       items,
		RequestedBy: user.ID,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	if err := queue.PublishCertificateGenerateJob(cc.app.Queue, payload); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to enqueue batch", util.GenerateErrorMessages(err), nil)
		return
	}

	numbers := make([]string, len(items))
	for i, item := range items {
		numbers[i] = item.CertificateNumber
	}

	util.ResponseSuccess(ctx, gin.H{
		"queued":             true,
		"certificateNumbers": numbers,
	})
}

// VerifyCertificate is the public endpoint behind the QR code on every
// certificate. No auth: anyone scanning the code may check authenticity.
func (cc CertificateController) VerifyCertificate(ctx *gin.Context) {
	number := ctx.Params.ByName("certificateNumber")
	if number == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate number is required", util.GenerateErrorMessages(errors.New(ErrCertificateNumberRequired), "certificateNumber"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetByNumber(ctx, nil, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), nil, "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to look up certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"valid": certificate.Status == constant.CertificateStatusGenerated,
		"certificate": gin.H{
			"certificateNumber": certificate.Number,
			"recipientName":     certificate.RecipientName,
			"programTitle":      certificate.Program.Title,
			"completionDate":    certgen.FormatDate(certificate.CompletionDate),
			"trainerName":       certificate.Program.Trainer.Name,
			"status":            certificate.Status,
			"pdfUrl":            certificate.PDFURL,
			"issuedAt":          certificate.CreatedAt,
		},
	})
}

// GetCertificatesByProgramId lists issued certificates of one program.
func (cc CertificateController) GetCertificatesByProgramId(ctx *gin.Context) {
	programId := ctx.Params.ByName("programId")
	if programId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Program id is required", util.GenerateErrorMessages(errors.New("program id is required"), "programId"), nil)
		return
	}

	var params paginationRequest
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	params.normalize()

	certificates, total, err := cc.app.Repository.Certificate.GetByProgramId(ctx, nil, programId, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(certificates) == 0 {
		certificates = []model.Certificate{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificates": certificates,
		"total":        total,
		"page":         params.Page,
		"pageSize":     params.PageSize,
		"totalPage":    util.CalculateTotalPage(total, params.PageSize),
	})
}
