package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/model"
	"github.com/hebatacademy/certify/internal/util"
	"gorm.io/gorm"
)

const (
	ErrProgramIdRequired = "program id is required"
	ErrProgramNotFound   = "program not found"
)

type ProgramController struct {
	*baseController
}

func (pc ProgramController) CreateProgram(ctx *gin.Context) {
	var program model.Program
	if err := ctx.ShouldBindJSON(&program); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := pc.app.Repository.Program.Create(ctx, nil, &program)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create program", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"program": created})
}

func (pc ProgramController) GetProgramById(ctx *gin.Context) {
	programId := ctx.Params.ByName("programId")
	if programId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Program id is required", util.GenerateErrorMessages(errors.New(ErrProgramIdRequired), "programId"), nil)
		return
	}

	program, err := pc.app.Repository.Program.GetById(ctx, nil, programId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Program not found", util.GenerateErrorMessages(errors.New(ErrProgramNotFound), nil, "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get program", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"program": program})
}

func (pc ProgramController) GetProgramList(ctx *gin.Context) {
	var params paginationRequest
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	params.normalize()

	programs, total, err := pc.app.Repository.Program.List(ctx, nil, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get program list", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(programs) == 0 {
		programs = []model.Program{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"programs":  programs,
		"total":     total,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(total, params.PageSize),
	})
}
