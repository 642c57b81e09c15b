package util

import (
	"strings"
	"testing"
)

func TestGetTempDir(t *testing.T) {
	dir := GetTempDir()

	if !strings.HasSuffix(dir, "/certify") {
		t.Errorf("Expected temp dir to end with /certify, got %s", dir)
	}
}
