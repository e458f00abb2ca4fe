// Package raster: PNG transcription of render op lists.

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/molvath/molvath/render"
)

// ErrBadCanvas indicates a non-positive canvas dimension.
var ErrBadCanvas = errors.New("raster: bad canvas size")

// DefaultMargin is the canvas padding in pixels.
const DefaultMargin = 12.0

// Option configures a Draw or EncodePNG call.
type Option func(*config)

type rgb struct{ r, g, b float64 }

type config struct {
	margin   float64
	bg, ink  rgb
	fontPath string
}

func defaultConfig() config {
	return config{
		margin: DefaultMargin,
		bg:     rgb{1, 1, 1},
		ink:    rgb{0, 0, 0},
	}
}

// WithMargin sets the canvas padding in pixels. Negative values keep the
// default.
func WithMargin(px float64) Option {
	return func(c *config) {
		if px >= 0 {
			c.margin = px
		}
	}
}

// WithBackground sets the page color; components are 0..1.
func WithBackground(r, g, b float64) Option {
	return func(c *config) { c.bg = rgb{r, g, b} }
}

// WithColor sets the ink color; components are 0..1.
func WithColor(r, g, b float64) Option {
	return func(c *config) { c.ink = rgb{r, g, b} }
}

// WithFontFile renders text with the TrueType font at path, sized per
// text op. Without it text falls back to the context's fixed bitmap face.
func WithFontFile(path string) Option {
	return func(c *config) { c.fontPath = path }
}

// Draw replays ops onto a width x height canvas and returns the image.
// The op list is replayed in order under a single uniform scale-to-fit
// transform; nothing is reordered or restyled.
//
// Returns ErrBadCanvas for non-positive dimensions.
func Draw(ops render.OpList, width, height int, opts ...Option) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: %dx%d: %w", width, height, ErrBadCanvas)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(cfg.bg.r, cfg.bg.g, cfg.bg.b)
	dc.Clear()

	v := fit(ops, width, height, cfg.margin)
	fontSize := 0.0
	for _, op := range ops {
		switch t := op.(type) {
		case render.LineOp:
			dc.SetRGB(cfg.ink.r, cfg.ink.g, cfg.ink.b)
			dc.SetLineWidth(v.px(t.Width))
			dc.DrawLine(v.x(t.X1), v.y(t.Y1), v.x(t.X2), v.y(t.Y2))
			dc.Stroke()
		case render.PolyOp:
			if len(t.Xs) == 0 {
				continue
			}
			dc.SetRGB(cfg.ink.r, cfg.ink.g, cfg.ink.b)
			dc.MoveTo(v.x(t.Xs[0]), v.y(t.Ys[0]))
			for i := 1; i < len(t.Xs); i++ {
				dc.LineTo(v.x(t.Xs[i]), v.y(t.Ys[i]))
			}
			dc.ClosePath()
			dc.Fill()
		case render.CircleOp:
			dc.SetRGB(cfg.ink.r, cfg.ink.g, cfg.ink.b)
			dc.DrawCircle(v.x(t.X), v.y(t.Y), v.px(t.R))
			dc.Fill()
		case render.RectOp:
			// Label background: painted page-colored so bond lines stay
			// clipped behind the text.
			dc.SetRGB(cfg.bg.r, cfg.bg.g, cfg.bg.b)
			dc.DrawRectangle(v.x(t.X), v.y(t.Y+t.H), t.W*v.scale, t.H*v.scale)
			dc.Fill()
		case render.TextOp:
			if cfg.fontPath != "" {
				if size := v.px(t.Size); size != fontSize {
					if err := dc.LoadFontFace(cfg.fontPath, size); err != nil {
						return nil, fmt.Errorf("raster: load font %q: %w", cfg.fontPath, err)
					}
					fontSize = size
				}
			}
			dc.SetRGB(cfg.ink.r, cfg.ink.g, cfg.ink.b)
			dc.DrawStringAnchored(t.Text, v.x(t.X), v.y(t.Y), 0.5, 0.5)
		}
	}
	return dc.Image(), nil
}

// EncodePNG draws ops and writes the result to w as PNG.
func EncodePNG(w io.Writer, ops render.OpList, width, height int, opts ...Option) error {
	img, err := Draw(ops, width, height, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// viewport maps molecule units onto the pixel canvas: uniform scale,
// centered, Y flipped to screen orientation.
type viewport struct {
	scale      float64
	minX, minY float64
	offX, offY float64
	height     float64
	margin     float64
}

func fit(ops render.OpList, width, height int, margin float64) viewport {
	if 2*margin >= float64(width) || 2*margin >= float64(height) {
		margin = 0
	}
	v := viewport{scale: 1, height: float64(height), margin: margin}

	minX, minY, maxX, maxY, ok := render.Bounds(ops)
	if !ok {
		return v
	}
	v.minX, v.minY = minX, minY

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	rx, ry := maxX-minX, maxY-minY
	switch {
	case rx > 0 && ry > 0:
		v.scale = math.Min(availW/rx, availH/ry)
	case rx > 0:
		v.scale = availW / rx
	case ry > 0:
		v.scale = availH / ry
	}
	v.offX = (availW - rx*v.scale) / 2
	v.offY = (availH - ry*v.scale) / 2
	return v
}

func (v viewport) x(mx float64) float64 {
	return v.margin + v.offX + (mx-v.minX)*v.scale
}

func (v viewport) y(my float64) float64 {
	return v.height - v.margin - v.offY - (my-v.minY)*v.scale
}

// px scales a length, never collapsing a visible quantity below one pixel.
func (v viewport) px(l float64) float64 {
	return math.Max(1, l*v.scale)
}
