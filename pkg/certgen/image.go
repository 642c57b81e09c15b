package certgen

import (
	"fmt"

	"github.com/h2non/bimg"
)

// ResizeImage resizes an image file to the given pixel dimensions. Stamps are
// drawn at their natural size, so resizing to the target box in pixels gives
// the exact box in points at 72 DPI. Requires libvips on the system.
func ResizeImage(inFile, outFile string, width, height int) error {
	buffer, err := bimg.Read(inFile)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	options := bimg.Options{
		Width:        width,
		Height:       height,
		Quality:      100,
		Lossless:     true,
		Compression:  0,
		Interpolator: bimg.Bicubic,
		Rotate:       0,
	}

	newImage, err := bimg.NewImage(buffer).Process(options)
	if err != nil {
		return fmt.Errorf("failed to process image: %w", err)
	}

	if err := bimg.Write(outFile, newImage); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	return nil
}
