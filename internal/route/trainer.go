package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/middleware"
)

func V1_Trainers(r *gin.RouterGroup, tc *controller.TrainerController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/trainers")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", tc.GetTrainerList)
		v1.GET("/:trainerId", tc.GetTrainerById)
	}

	admin := r.Group("/v1/trainers")
	admin.Use(middleware.AuthMiddleware, middleware.RequireRole(constant.UserRoleAdmin))
	{
		admin.POST("", tc.CreateTrainer)
	}
}
