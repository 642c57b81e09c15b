package certgen

import (
	"math"
	"testing"
)

func TestAlignedX(t *testing.T) {
	tests := []struct {
		name      string
		align     TextAlign
		boxWidth  float64
		textWidth float64
		expected  float64
	}{
		{"left", TextAlignLeft, 400, 140, 0},
		{"center", TextAlignCenter, 400, 140, 130},
		{"right", TextAlignRight, 400, 140, 260},
		{"unknown alignment treated as left", TextAlign("justify"), 400, 140, 0},
		{"center with text wider than box", TextAlignCenter, 100, 140, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignedX(tt.align, tt.boxWidth, tt.textWidth)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AlignedX(%v, %v, %v) = %v, expected %v", tt.align, tt.boxWidth, tt.textWidth, got, tt.expected)
			}
		})
	}
}

// Center alignment must satisfy x = W/2 - T/2 exactly, per the editor's
// placement math.
func TestAlignedXCenterFormula(t *testing.T) {
	const w, tw = 400.0, 140.0
	if got := AlignedX(TextAlignCenter, w, tw); math.Abs(got-(w/2-tw/2)) > 1e-9 {
		t.Errorf("center alignment drifted from W/2 - T/2: %v", got)
	}
}

func TestPtMMRoundTrip(t *testing.T) {
	for _, pt := range []float64{0, 1, 24, 595, 841.89} {
		if got := mmToPt(ptToMM(pt)); math.Abs(got-pt) > 1e-9 {
			t.Errorf("round trip of %v gave %v", pt, got)
		}
	}
}

func TestRemoveLineBreaks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jane Doe", "Jane Doe"},
		{"Jane\nDoe", "Jane Doe"},
		{"Jane\r\nDoe\n", "Jane Doe"},
		{"\n\nJane\n\n", "Jane"},
	}

	for _, tt := range tests {
		if got := removeLineBreaks(tt.input); got != tt.expected {
			t.Errorf("removeLineBreaks(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
