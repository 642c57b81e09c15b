package certgen

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// VerificationURL builds the public link a scanned certificate resolves to.
func VerificationURL(baseURL, certificateNumber string) string {
	return fmt.Sprintf("%s/certificate/verify/%s", baseURL, certificateNumber)
}

// QRCode holds one rendered verification code. The three accessors are
// equivalent encodings of the same image.
type QRCode struct {
	png []byte
}

// GenerateQRCode renders link as a size x size PNG. Error-correction level is
// High so the code survives print degradation and partial occlusion.
func GenerateQRCode(link string, size int) (*QRCode, error) {
	png, err := qrcode.Encode(link, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return &QRCode{png: png}, nil
}

// PNG returns the raw image bytes, suitable for a storage upload.
func (q *QRCode) PNG() []byte {
	return q.png
}

// DataURL returns the image as a data URL for direct embedding.
func (q *QRCode) DataURL() string {
	return dataURLPrefix + q.Base64()
}

// Base64 returns the bare base64 payload without the data-URL prefix.
func (q *QRCode) Base64() string {
	return base64.StdEncoding.EncodeToString(q.png)
}
