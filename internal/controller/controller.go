package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	appcontext "github.com/hebatacademy/certify/internal/app_context"
	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/constant"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Certificate *CertificateController
	Template    *TemplateController
	Program     *ProgramController
	Trainer     *TrainerController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
		Template:    &TemplateController{baseController: bc},
		Program:     &ProgramController{baseController: bc},
		Trainer:     &TrainerController{baseController: bc},
	}
}

type paginationRequest struct {
	Page     uint `json:"page" form:"page" binding:"omitempty"`
	PageSize uint `json:"pageSize" form:"pageSize" binding:"omitempty"`
}

func (p *paginationRequest) normalize() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = constant.DefaultPageSize
	}
	if p.PageSize > constant.MaxPageSize {
		p.PageSize = constant.MaxPageSize
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
