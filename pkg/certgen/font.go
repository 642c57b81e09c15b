package certgen

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/sfnt"
)

type FontWeight string

const (
	FontWeightRegular FontWeight = "regular"
	FontWeightBold    FontWeight = "bold"
)

// Font describes how one field's text is drawn.
type Font struct {
	Family string     `json:"family"`
	Size   float64    `json:"size"`
	Weight FontWeight `json:"weight"`
	Color  string     `json:"color"`
}

// Style maps the configured weight to a canvas style. "bold" selects the
// bold face; any other value falls back to regular.
func (f Font) Style() canvas.FontStyle {
	if f.Weight == FontWeightBold {
		return canvas.FontBold
	}
	return canvas.FontRegular
}

type FontMetadata struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func fontMetadataFromFile(fontPath string) (*FontMetadata, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("retrieving font name: %w", err)
	}

	return &FontMetadata{Name: name, Path: fontPath}, nil
}

// ScanFontDir walks dir and collects metadata for every .ttf and .otf file.
func ScanFontDir(dir string) ([]FontMetadata, error) {
	var fonts []FontMetadata

	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(info.Name()))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}

		meta, err := fontMetadataFromFile(path)
		if err != nil {
			log.Printf("Skipping %q: %v", path, err)
			return nil
		}

		fonts = append(fonts, *meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}

// AvailableFonts reads the font metadata json produced by ScanFontDir.
func AvailableFonts(path string) ([]*FontMetadata, error) {
	var fonts []*FontMetadata

	if path == "" {
		path = "font_metadata.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fonts, fmt.Errorf("reading font metadata: %w", err)
	}

	if err := json.Unmarshal(data, &fonts); err != nil {
		return fonts, fmt.Errorf("unmarshalling font metadata: %w", err)
	}

	return fonts, nil
}

// FontLoader resolves template font families to loaded canvas faces.
type FontLoader struct {
	available []*FontMetadata
}

func NewFontLoader(metadataPath string) (*FontLoader, error) {
	fonts, err := AvailableFonts(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font metadata: %w", err)
	}
	if len(fonts) == 0 {
		return nil, fmt.Errorf("no fonts available in %q", metadataPath)
	}

	return &FontLoader{available: fonts}, nil
}

func (fl *FontLoader) metadataByName(family string) *FontMetadata {
	for _, font := range fl.available {
		if strings.EqualFold(font.Name, family) {
			return font
		}
	}
	return nil
}

// Load returns the font family for the requested name, falling back to the
// first available family when the template asks for one we do not have.
// Certificate text must render with some face rather than fail the whole
// document over a missing font.
func (fl *FontLoader) Load(family string, style canvas.FontStyle) (*canvas.FontFamily, error) {
	meta := fl.metadataByName(family)
	if meta == nil {
		meta = fl.available[0]
	}

	fontFamily := canvas.NewFontFamily(meta.Name)
	if err := fontFamily.LoadFontFile(meta.Path, style); err != nil {
		return nil, fmt.Errorf("failed to load font file %q: %w", meta.Path, err)
	}

	// A bold request against a single-face file still needs a regular face
	// registered for canvas to synthesize from.
	if style != canvas.FontRegular {
		if err := fontFamily.LoadFontFile(meta.Path, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("failed to load regular face %q: %w", meta.Path, err)
		}
	}

	return fontFamily, nil
}
