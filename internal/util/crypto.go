package util

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateCertificateNumber builds a unique human-readable certificate
// number, e.g. "CERT-2025-V1StGXR8Z5".
func GenerateCertificateNumber() (string, error) {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", 10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT-%d-%s", time.Now().Year(), id), nil
}
