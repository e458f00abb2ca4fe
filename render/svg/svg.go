// Package svg: SVG transcription of render op lists.

package svg

import (
	"errors"
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/molvath/molvath/render"
)

// ErrBadCanvas indicates a non-positive canvas dimension.
var ErrBadCanvas = errors.New("svg: bad canvas size")

// DefaultMargin is the canvas padding in pixels.
const DefaultMargin = 12

// Option configures a Write call.
type Option func(*config)

type config struct {
	margin     int
	background string
	color      string
}

func defaultConfig() config {
	return config{
		margin:     DefaultMargin,
		background: "white",
		color:      "black",
	}
}

// WithMargin sets the canvas padding in pixels. Negative values keep the
// default.
func WithMargin(px int) Option {
	return func(c *config) {
		if px >= 0 {
			c.margin = px
		}
	}
}

// WithBackground sets the page fill as a CSS color. An empty string drops
// the page rectangle; label backgrounds still paint so bonds stay clipped
// behind text.
func WithBackground(css string) Option {
	return func(c *config) { c.background = css }
}

// WithColor sets the ink as a CSS color. Empty keeps the default.
func WithColor(css string) Option {
	return func(c *config) {
		if css != "" {
			c.color = css
		}
	}
}

// Write transcribes ops onto a width x height SVG canvas and writes the
// document to w. The op list is replayed in order with a single uniform
// scale-to-fit transform; nothing is reordered or restyled.
//
// Returns ErrBadCanvas for non-positive dimensions. Output is
// byte-identical for identical input.
func Write(w io.Writer, ops render.OpList, width, height int, opts ...Option) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: %dx%d: %w", width, height, ErrBadCanvas)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Start(width, height)
	if cfg.background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+cfg.background)
	}

	v := fit(ops, width, height, cfg.margin)
	rectFill := cfg.background
	if rectFill == "" {
		rectFill = "white"
	}
	for _, op := range ops {
		switch t := op.(type) {
		case render.LineOp:
			canvas.Line(v.x(t.X1), v.y(t.Y1), v.x(t.X2), v.y(t.Y2),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linecap:round", cfg.color, v.px(t.Width)))
		case render.PolyOp:
			xs := make([]int, len(t.Xs))
			ys := make([]int, len(t.Ys))
			for i := range t.Xs {
				xs[i] = v.x(t.Xs[i])
				ys[i] = v.y(t.Ys[i])
			}
			canvas.Polygon(xs, ys, "fill:"+cfg.color+";stroke:none")
		case render.CircleOp:
			canvas.Circle(v.x(t.X), v.y(t.Y), v.px(t.R), "fill:"+cfg.color)
		case render.RectOp:
			// RectOp anchors at min X, min Y; SVG rects anchor at the top.
			canvas.Rect(v.x(t.X), v.y(t.Y+t.H), v.px(t.W), v.px(t.H), "fill:"+rectFill)
		case render.TextOp:
			canvas.Text(v.x(t.X), v.y(t.Y), t.Text,
				fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-family:sans-serif;font-size:%dpx;fill:%s", v.px(t.Size), cfg.color))
		}
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("svg: write: %w", ew.err)
	}
	return nil
}

// errWriter latches the first write failure; svgo itself discards errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// viewport maps molecule units onto the pixel canvas: uniform scale,
// centered, Y flipped to screen orientation.
type viewport struct {
	scale      float64
	minX, minY float64
	offX, offY float64
	height     int
	margin     int
}

func fit(ops render.OpList, width, height, margin int) viewport {
	if 2*margin >= width || 2*margin >= height {
		margin = 0
	}
	v := viewport{scale: 1, height: height, margin: margin}

	minX, minY, maxX, maxY, ok := render.Bounds(ops)
	if !ok {
		return v
	}
	v.minX, v.minY = minX, minY

	availW := float64(width - 2*margin)
	availH := float64(height - 2*margin)
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

func (v viewport) x(mx float64) int {
	return int(math.Round(float64(v.margin) + v.offX + (mx-v.minX)*v.scale))
}

func (v viewport) y(my float64) int {
	return int(math.Round(float64(v.height-v.margin) - v.offY - (my-v.minY)*v.scale))
}

// px scales a length, never collapsing a visible quantity below one pixel.
func (v viewport) px(l float64) int {
	p := int(math.Round(l * v.scale))
	if p < 1 {
		p = 1
	}
	return p
}
