package certgen

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Storage persists rendered artifacts. Uploads are upserts: writing the same
// object key twice overwrites. The minio-backed implementation lives in
// internal/file_storage; tests use a fake.
type Storage interface {
	Upload(ctx context.Context, bucket, objectName string, data []byte, contentType string) (string, error)
}

// Renderer produces the final certificate PDF bytes. Implemented by
// Compositor.
type Renderer interface {
	Render(ctx context.Context, tpl Template, data CertificateData, qr *QRCode) ([]byte, error)
}

// Result is the outcome for one certificate. In batch mode a failed item
// carries its reason in Error and empty URLs; the other items are unaffected.
type Result struct {
	CertificateID string `json:"certificateId"`
	PDFURL        string `json:"pdfUrl"`
	QRCodeURL     string `json:"qrCodeUrl"`
	Error         string `json:"error,omitempty"`
}

// Generator sequences one certificate's pipeline: QR code, PDF composition,
// storage uploads.
type Generator struct {
	opts     *Options
	renderer Renderer
	storage  Storage
	logger   *zap.SugaredLogger
}

func NewGenerator(opts *Options, renderer Renderer, storage Storage, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		opts:     opts,
		renderer: renderer,
		storage:  storage,
		logger:   logger,
	}
}

// Generate renders and persists a single certificate. Fatal steps return a
// typed error; the caller decides the user-facing response.
//
// Object keys are timestamp-suffixed, so regenerating the same certificate
// number is effectively idempotent but leaves the superseded blobs behind.
// Retention of those is an operator concern.
func (g *Generator) Generate(ctx context.Context, tpl Template, data CertificateData) (*Result, error) {
	link := VerificationURL(g.opts.BaseURL, data.CertificateNumber)
	qr, err := GenerateQRCode(link, g.opts.QRImageSize)
	if err != nil {
		return nil, &QRGenerationError{CertificateNumber: data.CertificateNumber, Err: err}
	}

	pdf, err := g.renderer.Render(ctx, tpl, data, qr)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()

	pdfObject := fmt.Sprintf("certificate-%s-%d.pdf", data.CertificateNumber, timestamp)
	pdfURL, err := g.storage.Upload(ctx, g.opts.CertificateBucket, pdfObject, pdf, "application/pdf")
	if err != nil {
		return nil, &StorageUploadError{Bucket: g.opts.CertificateBucket, Object: pdfObject, Err: err}
	}

	qrObject := fmt.Sprintf("qr-%s-%d.png", data.CertificateNumber, timestamp)
	qrURL, err := g.storage.Upload(ctx, g.opts.QRCodeBucket, qrObject, qr.PNG(), "image/png")
	if err != nil {
		return nil, &StorageUploadError{Bucket: g.opts.QRCodeBucket, Object: qrObject, Err: err}
	}

	return &Result{
		CertificateID: data.CertificateNumber,
		PDFURL:        pdfURL,
		QRCodeURL:     qrURL,
	}, nil
}

type batchJob struct {
	index int
	data  CertificateData
}

type batchResult struct {
	index  int
	result *Result
	err    error
}

func calculateWorkerCount(jobCount int) int {
	return min(max(runtime.GOMAXPROCS(0)*2, 1), jobCount)
}

// GenerateBatch renders every record independently. The returned slice always
// has len(items) entries in input order; a failure on one record is captured
// in that entry's Error field and never aborts the rest of the batch.
func (g *Generator) GenerateBatch(ctx context.Context, tpl Template, items []CertificateData) []Result {
	if len(items) == 0 {
		return []Result{}
	}

	maxWorkers := calculateWorkerCount(len(items))
	g.logger.Debugf("Generating %d certificates with %d workers", len(items), maxWorkers)

	jobs := make(chan batchJob, len(items))
	results := make(chan batchResult, len(items))

	var wg sync.WaitGroup
	for range maxWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := g.Generate(ctx, tpl, job.data)
				results <- batchResult{index: job.index, result: res, err: err}
			}
		}()
	}

	for i, data := range items {
		jobs <- batchJob{index: i, data: data}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, len(items))
	for r := range results {
		if r.err != nil {
			g.logger.Warnf("Certificate %q failed: %v", items[r.index].CertificateNumber, r.err)
			out[r.index] = Result{
				CertificateID: items[r.index].CertificateNumber,
				Error:         r.err.Error(),
			}
			continue
		}
		out[r.index] = *r.result
	}

	return out
}
