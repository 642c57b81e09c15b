package certgen

// Template coordinates come from the editor canvas: origin top-left, y
// growing downward. PDF content streams measure y upward from the bottom.
// The stamping path itself anchors at pdfcpu's top-left position (see
// StampOnPDF), so these helpers cover the places that reason in PDF-native
// or bottom-edge terms: the field box height is the distance from the
// configured top y down to the baseline, and bottom-anchored defaults (QR
// box, signature) are derived from a bottom margin.

// TextBaselineY converts a field's top-left y to the PDF y of its baseline.
// The descent factor shifts the baseline down by a fraction of the font size
// so the visual cap-height lands where the editor showed it.
func TextBaselineY(pageHeight, topY, fontSize, descentFactor float64) float64 {
	return pageHeight - topY - fontSize - fontSize*descentFactor
}

// ImageY converts an image's top-left y to the PDF y of its bottom edge.
// The mapping is its own inverse, so it equally converts a desired bottom
// margin into the top-left y that produces it.
func ImageY(pageHeight, topY, size float64) float64 {
	return pageHeight - topY - size
}

// DefaultQRPosition returns the top-left coordinates of the QR box when a
// template does not override them: tucked into the bottom-right corner with
// an equal margin on both edges.
func DefaultQRPosition(pageWidth, pageHeight, size, margin float64) (x, y float64) {
	return pageWidth - size - margin, ImageY(pageHeight, margin, size)
}
