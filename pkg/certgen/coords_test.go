package certgen

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTextBaselineY(t *testing.T) {
	// A4 landscape-ish example: field at y=200 with 24pt text.
	got := TextBaselineY(842, 200, 24, 0)
	if !almostEqual(got, 618) {
		t.Errorf("expected 618, got %v", got)
	}

	withDescent := TextBaselineY(842, 200, 24, DefaultDescentFactor)
	if !almostEqual(withDescent, 618-24*0.3) {
		t.Errorf("expected %v, got %v", 618-24*0.3, withDescent)
	}
}

func TestTextBaselineYScalesWithPageHeight(t *testing.T) {
	const topY, fontSize = 120.0, 18.0

	small := TextBaselineY(600, topY, fontSize, DefaultDescentFactor)
	large := TextBaselineY(900, topY, fontSize, DefaultDescentFactor)

	// Same offset from the top means the distance from the bottom grows by
	// exactly the page height difference.
	if !almostEqual(large-small, 300) {
		t.Errorf("expected delta 300, got %v", large-small)
	}
}

func TestImageY(t *testing.T) {
	if got := ImageY(842, 200, 100); !almostEqual(got, 542) {
		t.Errorf("expected 542, got %v", got)
	}
}

func TestDefaultQRPosition(t *testing.T) {
	x, y := DefaultQRPosition(595, 842, DefaultQRBoxSize, DefaultQRMargin)
	if !almostEqual(x, 595-100-20) {
		t.Errorf("expected x %v, got %v", 595-100-20, x)
	}
	if !almostEqual(y, 842-100-20) {
		t.Errorf("expected y %v, got %v", 842-100-20, y)
	}
}

func TestFieldBoxSpansTopToBaseline(t *testing.T) {
	const pageHeight, topY, fontSize = 842.0, 200.0, 24.0

	// The stamped field box runs from the configured top y down to the
	// baseline, so its height is the ascent plus the calibrated descent.
	height := (pageHeight - topY) - TextBaselineY(pageHeight, topY, fontSize, DefaultDescentFactor)
	if !almostEqual(height, fontSize*(1+DefaultDescentFactor)) {
		t.Errorf("expected box height %v, got %v", fontSize*(1+DefaultDescentFactor), height)
	}
}

func TestImageYIsItsOwnInverse(t *testing.T) {
	const pageHeight, size = 842.0, 100.0

	topY := ImageY(pageHeight, DefaultSignatureBottomMargin, size)
	if !almostEqual(ImageY(pageHeight, topY, size), DefaultSignatureBottomMargin) {
		t.Errorf("expected round trip back to %v, got %v", DefaultSignatureBottomMargin, ImageY(pageHeight, topY, size))
	}
}
