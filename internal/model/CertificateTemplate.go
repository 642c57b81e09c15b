package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/hebatacademy/certify/pkg/certgen"
)

// FieldMap stores the template's field configuration as jsonb. Keys are
// semantic field names, values the draw config.
type FieldMap map[string]certgen.FieldConfig

func (fm FieldMap) Value() (driver.Value, error) {
	if fm == nil {
		return "{}", nil
	}
	data, err := json.Marshal(fm)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (fm *FieldMap) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*fm = FieldMap{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into FieldMap", value)
	}
	return json.Unmarshal(data, fm)
}

type CertificateTemplate struct {
	BaseModel
	Name   string   `gorm:"type:text;not null" json:"name" form:"name" binding:"strNotEmpty"`
	PDFURL string   `gorm:"type:text;not null" json:"templatePdfUrl" form:"templatePdfUrl" binding:"required,url"`
	Fields FieldMap `gorm:"type:jsonb;default:'{}'" json:"templateFields" form:"templateFields"`

	SignatoryName     string `gorm:"type:text;not null" json:"signatoryName" form:"signatoryName" binding:"strNotEmpty"`
	SignatoryPosition string `gorm:"type:text;not null" json:"signatoryPosition" form:"signatoryPosition" binding:"strNotEmpty"`
	SignatureURL      string `gorm:"type:text" json:"signatorySignatureUrl" form:"signatorySignatureUrl"`

	QRBoxSize float64 `gorm:"type:numeric;default:0" json:"qrCodeSize" form:"qrCodeSize"`
	QRX       float64 `gorm:"type:numeric;default:0" json:"qrCodePositionX" form:"qrCodePositionX"`
	QRY       float64 `gorm:"type:numeric;default:0" json:"qrCodePositionY" form:"qrCodePositionY"`

	SignatureX      float64 `gorm:"type:numeric;default:0" json:"signaturePositionX" form:"signaturePositionX"`
	SignatureY      float64 `gorm:"type:numeric;default:0" json:"signaturePositionY" form:"signaturePositionY"`
	SignatureWidth  float64 `gorm:"type:numeric;default:0" json:"signatureWidth" form:"signatureWidth"`
	SignatureHeight float64 `gorm:"type:numeric;default:0" json:"signatureHeight" form:"signatureHeight"`
}

func (ct CertificateTemplate) TableName() string {
	return "certificate_templates"
}

// ToRenderTemplate maps the stored row to the render pipeline's template.
func (ct CertificateTemplate) ToRenderTemplate() certgen.Template {
	return certgen.Template{
		PDFURL:            ct.PDFURL,
		Fields:            ct.Fields,
		SignatoryName:     ct.SignatoryName,
		SignatoryPosition: ct.SignatoryPosition,
		SignatureURL:      ct.SignatureURL,
		QRBoxSize:         ct.QRBoxSize,
		QRX:               ct.QRX,
		QRY:               ct.QRY,
		SignatureX:        ct.SignatureX,
		SignatureY:        ct.SignatureY,
		SignatureWidth:    ct.SignatureWidth,
		SignatureHeight:   ct.SignatureHeight,
	}
}
