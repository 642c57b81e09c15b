package certgen

import (
	"fmt"
	"os"
)

const (
	// DefaultQRImageSize is the rendered QR PNG size in pixels. The stored
	// image is larger than the stamped one so it stays scannable when shown
	// on its own.
	DefaultQRImageSize = 200

	// DefaultQRBoxSize is the square QR box drawn on the certificate, in
	// PDF points.
	DefaultQRBoxSize = 100.0

	// DefaultQRMargin is the distance in points between the QR box and the
	// right/bottom page edges when a template does not position it.
	DefaultQRMargin = 20.0

	// DefaultDescentFactor shifts text down by a fraction of the font size
	// to close the gap between the nominal ascent box and the visual
	// cap-height.
	DefaultDescentFactor = 0.3

	DefaultSignatureWidth  = 150.0
	DefaultSignatureHeight = 50.0

	// DefaultSignatureBottomMargin is the distance in points between the
	// signature image and the bottom page edge when a template does not
	// position it.
	DefaultSignatureBottomMargin = 80.0
)

// Options carries everything the pipeline needs so leaf code never reads
// ambient environment state.
type Options struct {
	// BaseURL is the public application origin used to build verification
	// links, e.g. "https://akademi.hebat.id".
	BaseURL string

	// Buckets the orchestrator uploads rendered output to.
	CertificateBucket string
	QRCodeBucket      string

	// FontMetadataPath points to the json produced by ScanFontDir.
	FontMetadataPath string

	// TmpDir holds per-render scratch files, removed after each render.
	TmpDir string

	QRImageSize   int
	QRBoxSize     float64
	QRMargin      float64
	DescentFactor float64

	SignatureWidth  float64
	SignatureHeight float64
}

func NewDefaultOptions(baseURL string) *Options {
	opts := &Options{
		BaseURL:           baseURL,
		CertificateBucket: "certificates",
		QRCodeBucket:      "qr-codes",
		FontMetadataPath:  "font_metadata.json",
		TmpDir:            fmt.Sprintf("%s/certify/render", os.TempDir()),
		QRImageSize:       DefaultQRImageSize,
		QRBoxSize:         DefaultQRBoxSize,
		QRMargin:          DefaultQRMargin,
		DescentFactor:     DefaultDescentFactor,
		SignatureWidth:    DefaultSignatureWidth,
		SignatureHeight:   DefaultSignatureHeight,
	}

	if err := os.MkdirAll(opts.TmpDir, 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
	}

	return opts
}
