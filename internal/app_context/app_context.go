package appcontext

import (
	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/config"
	filestorage "github.com/hebatacademy/certify/internal/file_storage"
	"github.com/hebatacademy/certify/internal/mailer"
	"github.com/hebatacademy/certify/internal/queue"
	"github.com/hebatacademy/certify/internal/repository"
	"github.com/hebatacademy/certify/pkg/certgen"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	// Logger lol....
	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// Storage uploads rendered certificates and qr codes to minio.
	Storage *filestorage.MinioStorage

	// Queue publishes batch generation jobs to rabbitmq. Nil when the api
	// runs without a broker, in which case batches render synchronously.
	Queue *queue.RabbitMQ

	// Generator runs the certificate render pipeline.
	Generator *certgen.Generator
}
