package certgen

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type fakeRenderer struct {
	failFor map[string]error
}

func (f *fakeRenderer) Render(_ context.Context, _ Template, data CertificateData, qr *QRCode) ([]byte, error) {
	if err, ok := f.failFor[data.CertificateNumber]; ok {
		return nil, err
	}
	if qr == nil {
		return nil, errors.New("missing QR code")
	}
	return []byte("%PDF-fake " + data.CertificateNumber), nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, bucket, objectName string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && bucket == f.failOn {
		return "", errors.New("bucket unavailable")
	}
	key := bucket + "/" + objectName
	f.objects[key] = data
	return "https://storage.example.com/" + key, nil
}

func testGenerator(renderer Renderer, storage Storage) *Generator {
	opts := &Options{
		BaseURL:           "https://academy.example.com",
		CertificateBucket: "certificates",
		QRCodeBucket:      "qr-codes",
		QRImageSize:       DefaultQRImageSize,
	}
	return NewGenerator(opts, renderer, storage, zap.NewNop().Sugar())
}

func TestGenerateSingle(t *testing.T) {
	storage := newFakeStorage()
	g := testGenerator(&fakeRenderer{}, storage)

	res, err := g.Generate(context.Background(), Template{}, CertificateData{
		CertificateNumber: "CERT-2024-0001",
		RecipientName:     "Jane Doe",
		ProgramTitle:      "Leadership Fundamentals",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CertificateID != "CERT-2024-0001" {
		t.Errorf("unexpected certificate id %q", res.CertificateID)
	}
	if res.Error != "" {
		t.Errorf("unexpected error field %q", res.Error)
	}

	pdfKey := regexp.MustCompile(`^https://storage\.example\.com/certificates/certificate-CERT-2024-0001-\d+\.pdf$`)
	if !pdfKey.MatchString(res.PDFURL) {
		t.Errorf("unexpected pdf url %q", res.PDFURL)
	}
	qrKey := regexp.MustCompile(`^https://storage\.example\.com/qr-codes/qr-CERT-2024-0001-\d+\.png$`)
	if !qrKey.MatchString(res.QRCodeURL) {
		t.Errorf("unexpected qr url %q", res.QRCodeURL)
	}

	if len(storage.objects) != 2 {
		t.Errorf("expected 2 uploaded objects, got %d", len(storage.objects))
	}
}

func TestGenerateRendererErrorPropagates(t *testing.T) {
	tplErr := &TemplateLoadError{URL: "https://example.com/t.pdf", Err: errors.New("404")}
	g := testGenerator(&fakeRenderer{failFor: map[string]error{"CERT-1": tplErr}}, newFakeStorage())

	_, err := g.Generate(context.Background(), Template{}, CertificateData{CertificateNumber: "CERT-1"})
	var got *TemplateLoadError
	if !errors.As(err, &got) {
		t.Fatalf("expected TemplateLoadError, got %v", err)
	}
}

func TestGenerateStorageErrorIsFatal(t *testing.T) {
	storage := newFakeStorage()
	storage.failOn = "certificates"
	g := testGenerator(&fakeRenderer{}, storage)

	_, err := g.Generate(context.Background(), Template{}, CertificateData{CertificateNumber: "CERT-1"})
	var got *StorageUploadError
	if !errors.As(err, &got) {
		t.Fatalf("expected StorageUploadError, got %v", err)
	}
	if got.Bucket != "certificates" {
		t.Errorf("unexpected bucket %q", got.Bucket)
	}
}

func TestGenerateBatchIsolatesFailures(t *testing.T) {
	const n = 5
	failing := "CERT-3"

	items := make([]CertificateData, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, CertificateData{CertificateNumber: fmt.Sprintf("CERT-%d", i)})
	}

	renderer := &fakeRenderer{failFor: map[string]error{
		failing: &TemplateLoadError{URL: "https://example.com/t.pdf", Err: errors.New("unreachable")},
	}}
	g := testGenerator(renderer, newFakeStorage())

	results := g.GenerateBatch(context.Background(), Template{}, items)
	if len(results) != n {
		t.Fatalf("expected %d results, got %d", n, len(results))
	}

	for i, res := range results {
		if res.CertificateID != items[i].CertificateNumber {
			t.Errorf("result %d out of order: got %q, expected %q", i, res.CertificateID, items[i].CertificateNumber)
		}

		if items[i].CertificateNumber == failing {
			if res.Error == "" {
				t.Errorf("expected error for %q", failing)
			}
			if res.PDFURL != "" || res.QRCodeURL != "" {
				t.Errorf("failed item should have empty URLs, got %q %q", res.PDFURL, res.QRCodeURL)
			}
			continue
		}

		if res.Error != "" {
			t.Errorf("unexpected error for %q: %s", res.CertificateID, res.Error)
		}
		if res.PDFURL == "" || res.QRCodeURL == "" {
			t.Errorf("missing URLs for %q", res.CertificateID)
		}
	}
}

func TestGenerateBatchEmpty(t *testing.T) {
	g := testGenerator(&fakeRenderer{}, newFakeStorage())
	results := g.GenerateBatch(context.Background(), Template{}, nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
