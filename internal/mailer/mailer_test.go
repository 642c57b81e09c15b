package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
)

func TestCertificateIssuedTemplate(t *testing.T) {
	tmpl, err := template.ParseFS(FS, "templates/"+CERTIFICATE_ISSUED_TEMPLATE)
	if err != nil {
		t.Fatalf("failed to parse template: %v", err)
	}

	vars := struct {
		RecipientName     string
		ProgramTitle      string
		CertificateNumber string
		PDFURL            string
		VerificationURL   string
	}{
		RecipientName:     "Budi Santoso",
		ProgramTitle:      "Pelatihan Kepemimpinan",
		CertificateNumber: "CERT-2025-A1B2C3D4E5",
		PDFURL:            "https://storage.example.com/certificates/certificate-CERT-2025-A1B2C3D4E5.pdf",
		VerificationURL:   "https://hebatacademy.example.com/certificate/verify/CERT-2025-A1B2C3D4E5",
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", vars); err != nil {
		t.Fatalf("failed to execute subject: %v", err)
	}
	if !strings.Contains(subject.String(), vars.ProgramTitle) {
		t.Errorf("subject %q does not mention the program title", subject.String())
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", vars); err != nil {
		t.Fatalf("failed to execute body: %v", err)
	}

	for _, want := range []string{vars.RecipientName, vars.CertificateNumber, vars.PDFURL, vars.VerificationURL} {
		if !strings.Contains(body.String(), want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}
