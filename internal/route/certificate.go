package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/middleware"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, middleware *middleware.Middleware) {
	// Verification is public: the QR code on every certificate points here.
	r.GET("/v1/certificates/verify/:certificateNumber", cc.VerifyCertificate)

	v1 := r.Group("/v1/certificates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/generate", cc.GenerateCertificate)
		v1.POST("/generate/batch", cc.GenerateBatch)
		v1.POST("/generate/batch/async", cc.EnqueueBatch)
	}
}
