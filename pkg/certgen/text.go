package certgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * tdewolff/canvas measures in mm; template coordinates are in points (px at
 * 72 DPI). Everything entering this file is in points and converted at the
 * edges.
 */

const renderDPI = 72

// AlignedX returns the x offset inside a field box for the given alignment.
// Center: boxWidth/2 - textWidth/2, right: boxWidth - textWidth.
func AlignedX(align TextAlign, boxWidth, textWidth float64) float64 {
	switch align {
	case TextAlignCenter:
		return boxWidth/2 - textWidth/2
	case TextAlignRight:
		return boxWidth - textWidth
	default:
		return 0
	}
}

// Rect is the bounding box of one field, in points.
type Rect struct {
	Width  float64
	Height float64
}

// TextRenderer draws one field's text into a rect-sized PDF that the
// compositor stamps onto the template at the field's configured position.
type TextRenderer struct {
	rect       Rect
	font       Font
	fontFamily *canvas.FontFamily
}

func NewTextRenderer(loader *FontLoader, rect Rect, font Font) (*TextRenderer, error) {
	fontFamily, err := loader.Load(font.Family, font.Style())
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &TextRenderer{
		rect:       rect,
		font:       font,
		fontFamily: fontFamily,
	}, nil
}

func ptToMM(pt float64) float64 {
	return (pt * 25.4) / renderDPI
}

func mmToPt(mm float64) float64 {
	return (mm * renderDPI) / 25.4
}

func (tr *TextRenderer) rectMM() Rect {
	return Rect{
		Width:  ptToMM(tr.rect.Width),
		Height: ptToMM(tr.rect.Height),
	}
}

func (tr *TextRenderer) color() canvas.Color {
	if tr.font.Color == "" {
		return canvas.Black
	}
	return canvas.Hex(tr.font.Color)
}

func (tr *TextRenderer) drawText(ctx *canvas.Context, text string, align TextAlign) {
	face := tr.fontFamily.Face(tr.font.Size, tr.color(), tr.font.Style(), canvas.FontNormal)

	rt := canvas.NewRichText(face)
	rt.WriteString(text)

	rectMM := tr.rectMM()
	textBox := rt.ToText(rectMM.Width, rectMM.Height, canvas.Left, canvas.Top, 0.0, 0.0)
	textWidthMM := textBox.Bounds().W()

	xPosition := AlignedX(align, rectMM.Width, textWidthMM)
	ctx.DrawText(xPosition, 0, textBox)
}

var lineBreakRe = regexp.MustCompile(`[\r\n]+`)

func removeLineBreaks(text string) string {
	return strings.TrimSpace(lineBreakRe.ReplaceAllString(text, " "))
}

// RenderTextPDF writes the text as a rect-sized single-page PDF. Certificate
// fields are single-line; embedded line breaks are collapsed.
func (tr *TextRenderer) RenderTextPDF(text string, align TextAlign, output string) error {
	rectMM := tr.rectMM()
	c := canvas.New(rectMM.Width, rectMM.Height)
	canvasCtx := canvas.NewContext(c)
	// Change coordination from bottom-left to top-left
	canvasCtx.SetCoordSystem(canvas.CartesianIV)

	tr.drawText(canvasCtx, removeLineBreaks(text), align)

	if err := renderers.Write(output, c); err != nil {
		return fmt.Errorf("failed to write text PDF: %w", err)
	}

	return nil
}
