package certgen

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Compositor produces final certificate PDF bytes from a template, a data
// record and a rendered QR code. It keeps no state between calls; every
// invocation works in its own scratch directory.
//
// Failure classification follows one rule: a certificate that cannot load its
// template is worthless, a certificate missing a decorative image is not.
// Template fetch/parse failures abort; per-field and per-image failures are
// logged and skipped.
type Compositor struct {
	opts   *Options
	fonts  *FontLoader
	client *http.Client
	logger *zap.SugaredLogger
}

func NewCompositor(opts *Options, fonts *FontLoader, client *http.Client, logger *zap.SugaredLogger) *Compositor {
	if client == nil {
		client = http.DefaultClient
	}

	return &Compositor{
		opts:   opts,
		fonts:  fonts,
		client: client,
		logger: logger,
	}
}

// Render overlays resolved field text, the QR code and an optional signatory
// signature onto the template's first page and returns the serialized PDF.
func (c *Compositor) Render(ctx context.Context, tpl Template, data CertificateData, qr *QRCode) ([]byte, error) {
	if err := os.MkdirAll(c.opts.TmpDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scratch root: %w", err)
	}
	workDir, err := os.MkdirTemp(c.opts.TmpDir, "render_*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	templateFile := filepath.Join(workDir, "template.pdf")
	if err := FetchToFile(ctx, c.client, tpl.PDFURL, templateFile); err != nil {
		return nil, &TemplateLoadError{URL: tpl.PDFURL, Err: err}
	}
	if err := ValidatePDF(templateFile); err != nil {
		return nil, &TemplateLoadError{URL: tpl.PDFURL, Err: err}
	}

	pageWidth, pageHeight, err := PageDimensions(templateFile)
	if err != nil {
		return nil, &TemplateLoadError{URL: tpl.PDFURL, Err: err}
	}

	currentFile, err := c.stampFields(tpl, data, templateFile, workDir, pageWidth, pageHeight)
	if err != nil {
		return nil, err
	}

	c.stampQRCode(tpl, qr, currentFile, workDir, pageWidth, pageHeight)
	c.stampSignature(ctx, tpl, currentFile, workDir, pageWidth, pageHeight)

	out, err := os.ReadFile(currentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered certificate: %w", err)
	}
	return out, nil
}

// Fields never overlap by construction, so draw order does not change the
// visual output; names are sorted only to keep renders reproducible.
func sortedFieldNames(fields map[string]FieldConfig) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tempFileName reserves a unique file in dir and returns its path. The
// handle is closed immediately; callers only pass the name to the text
// renderer and pdfcpu, and holding it open would leak a descriptor per
// field on a long-running server.
func tempFileName(dir, pattern string) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}

	name := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

func (c *Compositor) stampFields(tpl Template, data CertificateData, templateFile, workDir string, pageWidth, pageHeight float64) (string, error) {
	currentFile := templateFile

	for _, name := range sortedFieldNames(tpl.Fields) {
		fc := tpl.Fields[name]

		if err := fc.Validate(); err != nil {
			c.logger.Warnf("Skipping malformed field %q: %v", name, err)
			continue
		}

		text := ResolveFieldText(name, fc, data, tpl)
		if text == "" {
			continue
		}

		boxWidth := fc.Width
		if boxWidth == 0 {
			boxWidth = pageWidth - fc.Position.X
		}
		// The box runs from the configured top y down to the text baseline,
		// so the cap-height lands where the editor placed the field.
		boxHeight := (pageHeight - fc.Position.Y) - TextBaselineY(pageHeight, fc.Position.Y, fc.Font.Size, c.opts.DescentFactor)

		renderer, err := NewTextRenderer(c.fonts, Rect{Width: boxWidth, Height: boxHeight}, fc.Font)
		if err != nil {
			c.logger.Warnf("Skipping field %q: %v", name, err)
			continue
		}

		textFile, err := tempFileName(workDir, "field_*.pdf")
		if err != nil {
			return "", fmt.Errorf("failed to create field scratch file: %w", err)
		}

		if err := renderer.RenderTextPDF(text, fc.Align, textFile); err != nil {
			c.logger.Warnf("Skipping field %q: %v", name, err)
			continue
		}

		stamped, err := tempFileName(workDir, "stamped_*.pdf")
		if err != nil {
			return "", fmt.Errorf("failed to create stamp scratch file: %w", err)
		}

		if err := StampOnPDF(currentFile, stamped, []string{"1"}, textFile, fc.Position.X, fc.Position.Y); err != nil {
			c.logger.Warnf("Skipping field %q: %v", name, err)
			continue
		}

		currentFile = stamped
	}

	return currentFile, nil
}

func (c *Compositor) stampQRCode(tpl Template, qr *QRCode, currentFile, workDir string, pageWidth, pageHeight float64) {
	if qr == nil {
		return
	}

	size := tpl.QRBoxSize
	if size == 0 {
		size = c.opts.QRBoxSize
	}

	x, y := tpl.QRX, tpl.QRY
	if x == 0 && y == 0 {
		x, y = DefaultQRPosition(pageWidth, pageHeight, size, c.opts.QRMargin)
	}

	qrFile := filepath.Join(workDir, "qr.png")
	if err := os.WriteFile(qrFile, qr.PNG(), 0644); err != nil {
		c.logger.Warnf("Continuing without QR code: %v", &ImageEmbedError{Kind: "qr", Err: err})
		return
	}

	// Rendered at QRImageSize for standalone use; shrink to the on-page box.
	if err := ResizeImage(qrFile, qrFile, int(size), int(size)); err != nil {
		c.logger.Warnf("Continuing without QR code: %v", &ImageEmbedError{Kind: "qr", Err: err})
		return
	}

	if err := StampOnPDF(currentFile, currentFile, []string{"1"}, qrFile, x, y); err != nil {
		c.logger.Warnf("Continuing without QR code: %v", &ImageEmbedError{Kind: "qr", Err: err})
	}
}

func (c *Compositor) stampSignature(ctx context.Context, tpl Template, currentFile, workDir string, pageWidth, pageHeight float64) {
	if tpl.SignatureURL == "" {
		return
	}

	width := tpl.SignatureWidth
	if width == 0 {
		width = c.opts.SignatureWidth
	}
	height := tpl.SignatureHeight
	if height == 0 {
		height = c.opts.SignatureHeight
	}

	x, y := tpl.SignatureX, tpl.SignatureY
	if x == 0 && y == 0 {
		// Centered above the signatory name block near the page bottom.
		x = pageWidth/2 - width/2
		y = ImageY(pageHeight, DefaultSignatureBottomMargin, height)
	}

	sigFile := filepath.Join(workDir, "signature.png")
	if err := FetchToFile(ctx, c.client, tpl.SignatureURL, sigFile); err != nil {
		c.logger.Warnf("Continuing without signature: %v", &ImageEmbedError{Kind: "signature", Err: err})
		return
	}

	if err := ResizeImage(sigFile, sigFile, int(width), int(height)); err != nil {
		c.logger.Warnf("Continuing without signature: %v", &ImageEmbedError{Kind: "signature", Err: err})
		return
	}

	if err := StampOnPDF(currentFile, currentFile, []string{"1"}, sigFile, x, y); err != nil {
		c.logger.Warnf("Continuing without signature: %v", &ImageEmbedError{Kind: "signature", Err: err})
	}
}
