package game

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrUnsupportedGlyph is returned when text contains a rune the font lacks.
var ErrUnsupportedGlyph = errors.New("unsupported glyph")

// GlyphRenderer turns a string into a grid of lit pixels, indexed [row][column].
type GlyphRenderer interface {
	Render(text string) ([][]bool, error)
}

// BitmapFont renders text with a fixed-size bitmap face
type BitmapFont struct {
	face *basicfont.Face
}

// NewBitmapFont returns a renderer backed by the 7x13 basic font
func NewBitmapFont() *BitmapFont {
	return &BitmapFont{face: basicfont.Face7x13}
}

// Render draws text into an alpha mask and returns its set pixels.
func (f *BitmapFont) Render(text string) ([][]bool, error) {
	for _, r := range text {
		if !f.supports(r) {
			return nil, fmt.Errorf("render %q: %w %q", text, ErrUnsupportedGlyph, r)
		}
	}
	if text == "" {
		return [][]bool{}, nil
	}

	metrics := f.face.Metrics()
	width := font.MeasureString(f.face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	bitmap := make([][]bool, height)
	for y := 0; y < height; y++ {
		row := make([]bool, width)
		for x := 0; x < width; x++ {
			row[x] = mask.AlphaAt(x, y).A >= 0x80
		}
		bitmap[y] = row
	}
	return bitmap, nil
}

// supports reports whether r has its own glyph, ignoring the face's
// replacement-character fallback.
func (f *BitmapFont) supports(r rune) bool {
	if r == '\ufffd' {
		return false
	}
	for _, rng := range f.face.Ranges {
		if rng.Low <= r && r < rng.High {
			return true
		}
	}
	return false
}
