package certgen

import (
	"fmt"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// StampOnPDF overlays a PDF or image stamp onto inFile at a top-left-origin
// position. pdfcpu anchors "pos: tl" at the top-left corner and measures its
// y offset upward, so the configured y is negated. Scale 1 abs keeps the
// stamp at its natural size (1 px == 1 pt at 72 DPI).
func StampOnPDF(inFile, outFile string, selectedPages []string, stampFile string, posX, posY float64) error {
	description := fmt.Sprintf("pos: tl, off:%.2f %.2f, scale:1 abs, rotation:0", posX, posY*-1)
	onTop := true

	switch ext := filepath.Ext(stampFile); ext {
	case ".pdf":
		return api.AddPDFWatermarksFile(inFile, outFile, selectedPages, onTop, stampFile, description, nil)
	case ".png", ".jpg", ".jpeg":
		return api.AddImageWatermarksFile(inFile, outFile, selectedPages, onTop, stampFile, description, nil)
	default:
		return fmt.Errorf("unsupported stamp file type: %s", ext)
	}
}

// ValidatePDF checks that the file parses as a well-formed PDF.
func ValidatePDF(inFile string) error {
	if err := api.ValidateFile(inFile, nil); err != nil {
		return fmt.Errorf("invalid PDF: %w", err)
	}
	return nil
}

// PageDimensions returns the width and height in points of the first page.
// Certificates are single-page by convention; extra pages are ignored.
func PageDimensions(inFile string) (float64, float64, error) {
	dims, err := api.PageDimsFile(inFile)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read page dimensions: %w", err)
	}
	if len(dims) == 0 {
		return 0, 0, fmt.Errorf("PDF has no pages")
	}
	return dims[0].Width, dims[0].Height, nil
}
