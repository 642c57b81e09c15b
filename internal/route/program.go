package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/middleware"
)

func V1_Programs(r *gin.RouterGroup, pc *controller.ProgramController, cc *controller.CertificateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/programs")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.GetProgramList)
		v1.GET("/:programId", pc.GetProgramById)
		v1.GET("/:programId/certificates", cc.GetCertificatesByProgramId)
	}

	admin := r.Group("/v1/programs")
	admin.Use(middleware.AuthMiddleware, middleware.RequireRole(constant.UserRoleAdmin))
	{
		admin.POST("", pc.CreateProgram)
	}
}
