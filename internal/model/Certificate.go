package model

import (
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/pkg/certgen"
)

// Certificate is one issued certificate: a snapshot of the recipient facts
// it was rendered with plus the storage URLs of the rendered artifacts. The
// snapshot keeps verification stable even if the program or trainer rows
// change later.
type Certificate struct {
	BaseModel
	Number     string `gorm:"type:text;unique;not null" json:"certificateNumber" form:"certificateNumber"`
	ProgramID  string `gorm:"type:text" json:"programId" form:"programId"`
	TemplateID string `gorm:"type:text;not null" json:"templateId" form:"templateId"`

	RecipientName     string `gorm:"type:text;not null" json:"recipientName"`
	RecipientCompany  string `gorm:"type:text" json:"recipientCompany"`
	RecipientPosition string `gorm:"type:text" json:"recipientPosition"`
	RecipientEmail    string `gorm:"type:text" json:"recipientEmail"`
	CompletionDate    string `gorm:"type:text" json:"completionDate"`

	PDFURL    string                     `gorm:"type:text" json:"pdfUrl"`
	QRCodeURL string                     `gorm:"type:text" json:"qrCodeUrl"`
	Status    constant.CertificateStatus `gorm:"type:text;default:pending" json:"status"`

	Program  Program             `gorm:"constraint:OnDelete:SET NULL" json:"program,omitempty"`
	Template CertificateTemplate `gorm:"foreignKey:TemplateID;constraint:OnDelete:SET NULL" json:"template,omitempty"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

// ToCertificateData rebuilds the pipeline input used to (re)render this row.
func (c Certificate) ToCertificateData() certgen.CertificateData {
	return certgen.CertificateData{
		CertificateNumber: c.Number,
		RecipientName:     c.RecipientName,
		RecipientCompany:  c.RecipientCompany,
		RecipientPosition: c.RecipientPosition,
		RecipientEmail:    c.RecipientEmail,
		ProgramTitle:      c.Program.Title,
		ProgramStartDate:  c.Program.StartDate,
		ProgramEndDate:    c.Program.EndDate,
		CompletionDate:    c.CompletionDate,
		TrainerName:       c.Program.Trainer.Name,
		TrainerLevel:      c.Program.Trainer.Level,
	}
}
