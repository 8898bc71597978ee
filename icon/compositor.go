package icon

// Icon compositor for dock/app icons
//
// Responsibilities:
// 1. Decode the source image (PNG, JPEG, GIF, BMP, TIFF) into NRGBA
// 2. Shrink the content to 80% of the source width
// 3. Center it on a fully transparent canvas of the original size,
//    using the content's own alpha channel for blending
// 4. Encode the canvas as PNG and write it to disk
//
// The source is assumed to be square. Only the width is read and it is
// used for both axes, so non-square input is stretched to a square.

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// DefaultScale is the share of the canvas the content occupies after compositing
const DefaultScale = 0.8

// Options controls how the compositor resamples content
type Options struct {
	Scale     float64
	Resampler Resampler
}

// Result describes a single compositing run
type Result struct {
	OriginalSize int
	ContentSize  int
	Offset       int
	Scale        float64
	OutputPath   string
}

// Compositor turns a source image into a padded icon
type Compositor struct {
	scale     float64
	resampler Resampler
}

// NewCompositor creates a compositor, filling unset options with defaults
func NewCompositor(opts Options) *Compositor {
	if opts.Scale <= 0 || opts.Scale > 1 {
		opts.Scale = DefaultScale
	}
	if opts.Resampler == nil {
		opts.Resampler = Lanczos
	}
	return &Compositor{
		scale:     opts.Scale,
		resampler: opts.Resampler,
	}
}

// CreateIcon reads inputPath, composites it and writes the PNG to outputPath.
// Nothing is written unless decoding and encoding both succeed.
func CreateIcon(inputPath, outputPath string) (*Result, error) {
	return NewCompositor(Options{}).CreateIcon(inputPath, outputPath)
}

// CreateIcon runs the full load, resize, composite and save pipeline
func (c *Compositor) CreateIcon(inputPath, outputPath string) (*Result, error) {
	src, err := imaging.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	canvas, result := c.Composite(src)

	var buf bytes.Buffer
	if err := c.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write icon: %w", err)
	}

	result.OutputPath = outputPath
	return &result, nil
}

// Composite builds the icon canvas in memory
func (c *Compositor) Composite(src image.Image) (*image.NRGBA, Result) {
	bounds := src.Bounds()
	originalSize := bounds.Dx()
	if bounds.Dy() != originalSize {
		log.Printf("Warning: source is %dx%d, treating it as %dx%d", bounds.Dx(), bounds.Dy(), originalSize, originalSize)
	}

	contentSize := ContentSize(originalSize, c.scale)
	offset := CenterOffset(originalSize, contentSize)

	content := c.resampler.Resample(imaging.Clone(src), contentSize)

	canvas := imaging.New(originalSize, originalSize, color.NRGBA{0, 0, 0, 0})
	target := image.Rect(offset, offset, offset+contentSize, offset+contentSize)
	draw.Draw(canvas, target, content, content.Bounds().Min, draw.Over)

	return canvas, Result{
		OriginalSize: originalSize,
		ContentSize:  contentSize,
		Offset:       offset,
		Scale:        c.scale,
	}
}

// Encode writes img as PNG, keeping the alpha channel
func (c *Compositor) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// ContentSize returns floor(originalSize * scale)
func ContentSize(originalSize int, scale float64) int {
	if originalSize <= 0 {
		return 0
	}
	return int(float64(originalSize) * scale)
}

// CenterOffset returns the offset that centers content on both axes
func CenterOffset(originalSize, contentSize int) int {
	return (originalSize - contentSize) / 2
}

// Summary returns the human readable report for a run
func (r Result) Summary() []string {
	percent := int(math.Round(r.Scale * 100))
	return []string{
		fmt.Sprintf("Created icon: %s", r.OutputPath),
		fmt.Sprintf("- Original size: %dx%d", r.OriginalSize, r.OriginalSize),
		fmt.Sprintf("- Content size: %dx%d (%d%%)", r.ContentSize, r.ContentSize, percent),
		"- Transparent background preserved",
	}
}
