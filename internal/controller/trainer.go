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
	ErrTrainerIdRequired = "trainer id is required"
	ErrTrainerNotFound   = "trainer not found"
)

type TrainerController struct {
	*baseController
}

func (tc TrainerController) CreateTrainer(ctx *gin.Context) {
	var trainer model.Trainer
	if err := ctx.ShouldBindJSON(&trainer); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request body", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := tc.app.Repository.Trainer.Create(ctx, nil, &trainer)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create trainer", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"trainer": created})
}

func (tc TrainerController) GetTrainerById(ctx *gin.Context) {
	trainerId := ctx.Params.ByName("trainerId")
	if trainerId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Trainer id is required", util.GenerateErrorMessages(errors.New(ErrTrainerIdRequired), "trainerId"), nil)
		return
	}

	trainer, err := tc.app.Repository.Trainer.GetById(ctx, nil, trainerId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Trainer not found", util.GenerateErrorMessages(errors.New(ErrTrainerNotFound), nil, "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get trainer", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"trainer": trainer})
}

func (tc TrainerController) GetTrainerList(ctx *gin.Context) {
	var params paginationRequest
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	params.normalize()

	trainers, total, err := tc.app.Repository.Trainer.List(ctx, nil, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get trainer list", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(trainers) == 0 {
		trainers = []model.Trainer{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"trainers":  trainers,
		"total":     total,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(total, params.PageSize),
	})
}
