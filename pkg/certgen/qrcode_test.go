package certgen

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerificationURL(t *testing.T) {
	got := VerificationURL("https://academy.example.com", "CERT-2024-0001")
	expected := "https://academy.example.com/certificate/verify/CERT-2024-0001"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestGenerateQRCode(t *testing.T) {
	qr, err := GenerateQRCode("https://academy.example.com/certificate/verify/CERT-2024-0001", DefaultQRImageSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(qr.PNG(), pngHeader) {
		t.Error("PNG() does not start with the PNG magic bytes")
	}

	dataURL := qr.DataURL()
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Errorf("DataURL() missing prefix: %q", dataURL[:30])
	}

	if got := strings.TrimPrefix(dataURL, "data:image/png;base64,"); got != qr.Base64() {
		t.Error("Base64() does not equal DataURL() with the prefix stripped")
	}
}

func TestGenerateQRCodeTooLong(t *testing.T) {
	// QR capacity at level High tops out around 1273 bytes.
	_, err := GenerateQRCode(strings.Repeat("x", 3000), DefaultQRImageSize)
	if err == nil {
		t.Fatal("expected an error for oversized content")
	}
}
