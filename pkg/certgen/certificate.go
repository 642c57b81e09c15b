package certgen

import (
	"fmt"
	"regexp"
)

// CertificateData is the transient input record for one rendering call. The
// caller assembles it from store rows; the pipeline never mutates it.
type CertificateData struct {
	CertificateNumber string `json:"certificateNumber" binding:"required"`
	RecipientName     string `json:"recipientName" binding:"required"`
	RecipientCompany  string `json:"recipientCompany"`
	RecipientPosition string `json:"recipientPosition"`
	RecipientEmail    string `json:"recipientEmail"`
	ProgramTitle      string `json:"programTitle" binding:"required"`
	ProgramStartDate  string `json:"programStartDate"`
	ProgramEndDate    string `json:"programEndDate"`
	CompletionDate    string `json:"completionDate"`
	TrainerName       string `json:"trainerName"`
	TrainerLevel      string `json:"trainerLevel"`
}

// Template supplies layout and signatory info for a certificate design. The
// base layer is a designer-authored single-page PDF with no dynamic text.
type Template struct {
	PDFURL string                 `json:"templatePdfUrl"`
	Fields map[string]FieldConfig `json:"templateFields"`

	SignatoryName     string `json:"signatoryName"`
	SignatoryPosition string `json:"signatoryPosition"`
	SignatureURL      string `json:"signatorySignatureUrl"`

	// Optional overrides; zero means "use the pipeline default".
	QRBoxSize float64 `json:"qrCodeSize"`
	QRX       float64 `json:"qrCodePositionX"`
	QRY       float64 `json:"qrCodePositionY"`

	SignatureX      float64 `json:"signaturePositionX"`
	SignatureY      float64 `json:"signaturePositionY"`
	SignatureWidth  float64 `json:"signatureWidth"`
	SignatureHeight float64 `json:"signatureHeight"`
}

type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// Position is in the template editor's coordinate system: origin at the
// top-left corner of the page, y growing downward.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FieldConfig describes one piece of dynamic text on the certificate.
type FieldConfig struct {
	Value    string    `json:"value"`
	Position Position  `json:"position"`
	Font     Font      `json:"font"`
	Width    float64   `json:"width"`
	Align    TextAlign `json:"align"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate rejects structurally malformed field entries at template load time
// instead of silently skipping them at draw time.
func (fc FieldConfig) Validate() error {
	if fc.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %v", fc.Font.Size)
	}
	if fc.Font.Color != "" && !hexColorRe.MatchString(fc.Font.Color) {
		return fmt.Errorf("font color must be #RRGGBB, got %q", fc.Font.Color)
	}
	if fc.Width < 0 {
		return fmt.Errorf("width must not be negative, got %v", fc.Width)
	}
	switch fc.Align {
	case TextAlignLeft, TextAlignCenter, TextAlignRight, "":
	default:
		return fmt.Errorf("unknown align %q", fc.Align)
	}
	return nil
}

// ValidateFields validates every configured field of a template.
func ValidateFields(fields map[string]FieldConfig) error {
	for name, fc := range fields {
		if err := fc.Validate(); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}
