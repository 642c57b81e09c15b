package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/mailer"
	"github.com/hebatacademy/certify/internal/repository"
	"github.com/hebatacademy/certify/pkg/certgen"
	"go.uber.org/zap"
)

type ConsumerContext struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	// Logger lol....
	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer sends the issued-certificate notification.
	Mailer mailer.Client

	// Generator runs the certificate render pipeline.
	Generator *certgen.Generator
}

type CertificateGeneratePayload struct {
	TemplateID  string                    `json:"template_id"`
	ProgramID   string                    `json:"program_id"`
	Items       []certgen.CertificateData `json:"items"`
	RequestedBy string                    `json:"requested_by"`
	CreatedAt   string                    `json:"created_at"`
	Retry       int                       `json:"retry" default:"0"`
}

type CertificateGenerateJobHandler func(jobPayload CertificateGeneratePayload, app *ConsumerContext) (bool, error)

func PublishCertificateGenerateJob(r *RabbitMQ, payload CertificateGeneratePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return r.Publish(QueueCertificateGenerate, body)
}

func dropQueueCleanUp(app *ConsumerContext, payload CertificateGeneratePayload) error {
	ctx := context.Background()

	for _, item := range payload.Items {
		if item.CertificateNumber == "" {
			continue
		}
		if err := app.Repository.Certificate.UpdateStatus(ctx, nil, item.CertificateNumber, constant.CertificateStatusFailed); err != nil {
			return err
		}
	}

	return nil
}

func (r *RabbitMQ) ConsumeCertificateGenerateJob(handler CertificateGenerateJobHandler, maxWorker int, app *ConsumerContext) error {
	msgs, err := r.Consume(QueueCertificateGenerate)
	if err != nil {
		return err
	}

	for i := range maxWorker {
		go func(workerID int) {
			for msg := range msgs {
				if msg.Body == nil {
					log.Printf("[Worker %d] Received empty message body", workerID)
					// Acknowledge the message and remove it from the queue
					_ = r.Nack(msg, false)
					continue
				}

				var jobPayload CertificateGeneratePayload
				if err := json.Unmarshal(msg.Body, &jobPayload); err != nil {
					log.Printf("[Worker %d] Invalid payload: %v", workerID, err)
					// Acknowledge the message and remove it from the queue
					_ = r.Nack(msg, false)
					continue
				}

				jobPayload.Retry++
				if jobPayload.Retry > MAX_QUEUE_RETRY {
					log.Printf("[Worker %d] Max retries reached", workerID)
					// Acknowledge the message and remove it from the queue
					_ = r.Nack(msg, false)
					continue
				}
				lastRetry := jobPayload.Retry == MAX_QUEUE_RETRY

				shouldRequeue, err := handler(jobPayload, app)
				if err != nil {
					log.Printf("[Worker %d] Handler error: %v", workerID, err)

					if !shouldRequeue || lastRetry {
						if err := dropQueueCleanUp(app, jobPayload); err != nil {
							log.Printf("[Worker %d] Failed to clean up batch for template %s: %v", workerID, jobPayload.TemplateID, err)
							r.Nack(msg, false)
							continue
						}

						log.Printf("[Worker %d] Dropped batch for template %s due to max retries", workerID, jobPayload.TemplateID)
						r.Nack(msg, false)
						continue
					}

					payloadBytes, err := json.Marshal(jobPayload)
					if err != nil {
						log.Printf("[Worker %d] Failed to marshal job payload: %v", workerID, err)
						_ = r.Nack(msg, false)
						continue
					}

					// requeue with updated retry count
					if err := r.Publish(QueueCertificateGenerate, payloadBytes); err != nil {
						log.Printf("[Worker %d] Failed to requeue job: %v", workerID, err)
						// Acknowledge the message and remove it from the queue
						_ = r.Nack(msg, false)
						continue
					}

					log.Printf("[Worker %d] Requeued job for TemplateID: %s, RequestedBy: %s, Retry: %d", workerID, jobPayload.TemplateID, jobPayload.RequestedBy, jobPayload.Retry)
					_ = r.Ack(msg)
					continue
				}

				log.Printf("[Worker %d] Successfully processed job for TemplateID: %s, RequestedBy: %s", workerID, jobPayload.TemplateID, jobPayload.RequestedBy)
				_ = r.Ack(msg)
			}
		}(i + 1)
	}

	return nil
}
