package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hebatacademy/certify/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	App         AppConfig
	DB          DatabaseConfig
	Minio       MinioConfig
	RabbitMQ    RabbitMQConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
	Render      RenderConfig
}

type AppConfig struct {
	// BaseURL is the public origin certificates link back to, e.g.
	// "https://akademi.hebat.id". QR verification URLs are built from it.
	BaseURL string
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	USE_SSL    bool

	CertificateBucket string
	QRCodeBucket      string
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USERNAME string
	PASSWORD string
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USERNAME, r.PASSWORD, r.HOST, r.PORT)
}

type MailConfig struct {
	SEND_GRID  SendGridConfig
	FROM_EMAIL string
}

type SendGridConfig struct {
	API_KEY string
}

type RenderConfig struct {
	FontMetadataPath string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimitTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimitTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		App: AppConfig{
			BaseURL: env.GetString("APP_BASE_URL", "http://localhost:3000"),
		},
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "certify"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		Minio: MinioConfig{
			ENDPOINT:          env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY:        env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY:        env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:           env.GetBool("MINIO_USE_SSL", false),
			CertificateBucket: env.GetString("MINIO_CERTIFICATE_BUCKET", "certificates"),
			QRCodeBucket:      env.GetString("MINIO_QR_CODE_BUCKET", "qr-codes"),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", "127.0.0.1"),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USERNAME: env.GetString("RABBITMQ_USERNAME", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimitTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			FROM_EMAIL: env.GetString("MAIL_FROM_MAIL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Render: RenderConfig{
			FontMetadataPath: env.GetString("RENDER_FONT_METADATA_PATH", "font_metadata.json"),
		},
	}
}
