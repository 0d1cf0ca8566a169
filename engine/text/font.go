package text

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// measureCacheSize bounds the per-font measurement cache. Small displays
// show a handful of distinct strings; this covers them with room to spare.
const measureCacheSize = 256

// Font is a rasterizable face plus the pixel metrics layout needs.
type Font struct {
	Face    font.Face
	SizePx  float32
	Ascent  int // baseline to top
	Descent int // baseline to bottom, positive
	LineGap int

	measured *lru.Cache[string, image.Point]
}

// NewFont wraps an existing face.
func NewFont(face font.Face, sizePx float32) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	lineGap := m.Height.Ceil() - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}
	cache, _ := lru.New[string, image.Point](measureCacheSize) // only fails for size <= 0
	return &Font{
		Face:     face,
		SizePx:   sizePx,
		Ascent:   ascent,
		Descent:  descent,
		LineGap:  lineGap,
		measured: cache,
	}
}

// LoadTTF parses TrueType/OpenType data and builds a face at sizePx.
func LoadTTF(data []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return NewFont(face, sizePx), nil
}

// LoadMono builds the Go Mono face at sizePx, the monospace look small
// displays are usually designed around.
func LoadMono(sizePx float32) (*Font, error) {
	return LoadTTF(gomono.TTF, sizePx)
}

// Basic is the fixed 7x13 bitmap face. It needs no parsing and cannot fail.
func Basic() *Font {
	return NewFont(basicfont.Face7x13, 13)
}

// LineHeight is the distance between consecutive baselines.
func (f *Font) LineHeight() int {
	h := f.Ascent + f.Descent + f.LineGap
	if h <= 0 {
		return 1
	}
	return h
}

// Close releases the face when it holds resources.
func (f *Font) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}
	return f.Face.Close()
}
