package certgen

import "fmt"

// TemplateLoadError is fatal: without a parseable template there is nothing
// to render on.
type TemplateLoadError struct {
	URL string
	Err error
}

func (e *TemplateLoadError) Error() string {
	return fmt.Sprintf("failed to load certificate template %q: %v", e.URL, e.Err)
}

func (e *TemplateLoadError) Unwrap() error { return e.Err }

// QRGenerationError is fatal: a certificate without a scannable verification
// code is not acceptable output.
type QRGenerationError struct {
	CertificateNumber string
	Err               error
}

func (e *QRGenerationError) Error() string {
	return fmt.Sprintf("failed to generate QR code for certificate %q: %v", e.CertificateNumber, e.Err)
}

func (e *QRGenerationError) Unwrap() error { return e.Err }

// ImageEmbedError is non-fatal: the pipeline logs it and continues with the
// image absent from the final PDF.
type ImageEmbedError struct {
	// Kind is "qr" or "signature"
	Kind string
	Err  error
}

func (e *ImageEmbedError) Error() string {
	return fmt.Sprintf("failed to embed %s image: %v", e.Kind, e.Err)
}

func (e *ImageEmbedError) Unwrap() error { return e.Err }

// StorageUploadError is fatal for the certificate being generated: an output
// that cannot be persisted has no URL to hand back.
type StorageUploadError struct {
	Bucket string
	Object string
	Err    error
}

func (e *StorageUploadError) Error() string {
	return fmt.Sprintf("failed to upload %s/%s: %v", e.Bucket, e.Object, e.Err)
}

func (e *StorageUploadError) Unwrap() error { return e.Err }
