package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/middleware"
)

func V1_Templates(r *gin.RouterGroup, tc *controller.TemplateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/templates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", tc.GetTemplateList)
		v1.GET("/:templateId", tc.GetTemplateById)
	}

	admin := r.Group("/v1/templates")
	admin.Use(middleware.AuthMiddleware, middleware.RequireRole(constant.UserRoleAdmin))
	{
		admin.POST("", tc.CreateTemplate)
		admin.PATCH("/:templateId", tc.UpdateTemplate)
		admin.DELETE("/:templateId", tc.DeleteTemplate)
	}
}
