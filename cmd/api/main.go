package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/hebatacademy/certify/internal/app_context"
	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/database"
	"github.com/hebatacademy/certify/internal/env"
	filestorage "github.com/hebatacademy/certify/internal/file_storage"
	"github.com/hebatacademy/certify/internal/mailer"
	"github.com/hebatacademy/certify/internal/middleware"
	"github.com/hebatacademy/certify/internal/queue"
	ratelimiter "github.com/hebatacademy/certify/internal/rate_limiter"
	"github.com/hebatacademy/certify/internal/repository"
	"github.com/hebatacademy/certify/internal/route"
	"github.com/hebatacademy/certify/internal/util"
	"github.com/hebatacademy/certify/pkg/certgen"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

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
	storage := filestorage.NewMinioStorage(s3, &cfg.Minio, logger)

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterCustomValidations(v); err != nil {
			logger.Panic(err)
		}
	}

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

	rabbit, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Warnf("RabbitMQ unavailable, async batch generation disabled: %v", err)
		rabbit = nil
	} else {
		defer rabbit.Close()
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Storage:    storage,
		Queue:      rabbit,
		Generator:  generator,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Certificates(rApi, _controller.Certificate, _middleware)
	route.V1_Templates(rApi, _controller.Template, _middleware)
	route.V1_Programs(rApi, _controller.Program, _controller.Certificate, _middleware)
	route.V1_Trainers(rApi, _controller.Trainer, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
