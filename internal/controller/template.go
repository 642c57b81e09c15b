package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/model"
	"github.com/hebatacademy/certify/internal/util"
	"github.com/hebatacademy/certify/pkg/certgen"
	"gorm.io/gorm"
)

type TemplateController struct {
	*baseController
}

// CreateTemplate stores a certificate template. Field configs are validated
// here so render jobs never hit a malformed template.
func (tc TemplateController) CreateTemplate(ctx *gin.Context) {
	var template model.CertificateTemplate
	if err := ctx.ShouldBindJSON(&template); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := certgen.ValidateFields(template.Fields); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid template fields", util.GenerateErrorMessages(err, "templateFields"), nil)
		return
	}

	created, err := tc.app.Repository.Template.Create(ctx, nil, &template)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create template", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"template": created})
}

func (tc TemplateController) GetTemplateById(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	template, err := tc.app.Repository.Template.GetById(ctx, nil, templateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(errors.New(ErrTemplateNotFound), nil, "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"template": template})
}

func (tc TemplateController) GetTemplateList(ctx *gin.Context) {
	var params paginationRequest
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	params.normalize()

	templates, total, err := tc.app.Repository.Template.List(ctx, nil, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template list", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(templates) == 0 {
		templates = []model.CertificateTemplate{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"templates": templates,
		"total":     total,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(total, params.PageSize),
	})
}

func (tc TemplateController) UpdateTemplate(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	var template model.CertificateTemplate
	if err := ctx.ShouldBindJSON(&template); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := certgen.ValidateFields(template.Fields); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid template fields", util.GenerateErrorMessages(err, "templateFields"), nil)
		return
	}

	template.ID = templateId
	if err := tc.app.Repository.Template.Update(ctx, nil, &template); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update template", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"template": template})
}

func (tc TemplateController) DeleteTemplate(ctx *gin.Context) {
	templateId := ctx.Params.ByName("templateId")
	if templateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template id is required", util.GenerateErrorMessages(errors.New(ErrTemplateIdRequired), "templateId"), nil)
		return
	}

	if err := tc.app.Repository.Template.DeleteById(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete template", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
