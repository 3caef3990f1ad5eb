package game

import "math"

// Point is a 2D offset or position in pixels
type Point struct {
	X, Y float64
}

// Canvas is a fixed-size packed-RGB framebuffer drawn on a torus.
// Buffer is row-major with Width*Height entries and is never resized.
type Canvas struct {
	Width  int
	Height int
	Buffer []uint32

	// Glyphs renders text for DrawText; nil disables text
	Glyphs GlyphRenderer
}

// NewCanvas creates a cleared canvas using the default bitmap font
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Buffer: make([]uint32, width*height),
		Glyphs: NewBitmapFont(),
	}
}

// Clear sets every pixel to color
func (c *Canvas) Clear(color uint32) {
	for i := range c.Buffer {
		c.Buffer[i] = color
	}
}

// Draw plots a single pixel, wrapping x and y around the canvas edges.
// Writes that still land outside the buffer are dropped.
func (c *Canvas) Draw(x, y float64, color uint32) {
	col := int(Wrap(x, float64(c.Width)))
	row := int(Wrap(y, float64(c.Height)))
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		return
	}
	idx := row*c.Width + col
	if idx < len(c.Buffer) {
		c.Buffer[idx] = color
	}
}

// At returns the pixel at column x, row y, or 0 outside the canvas
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0
	}
	return c.Buffer[y*c.Width+x]
}

// DrawLine rasterizes the segment between two unwrapped endpoints.
// Each stepped point goes through Draw, so segments crossing an edge
// continue on the opposite side. Both endpoints are plotted.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, color uint32) {
	dx := x2 - x1
	dy := y2 - y1
	dx1 := math.Abs(dx)
	dy1 := math.Abs(dy)
	px := 2*dy1 - dx1
	py := 2*dx1 - dy1

	// +1 on the minor axis when both deltas point the same way
	minorStep := -1.0
	if (dx < 0 && dy < 0) || (dx > 0 && dy > 0) {
		minorStep = 1.0
	}

	var x, y float64
	if dy1 <= dx1 {
		var xe float64
		if dx >= 0 {
			x, y, xe = x1, y1, x2
		} else {
			x, y, xe = x2, y2, x1
		}

		c.Draw(x, y, color)
		for x < xe {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				y += minorStep
				px += 2 * (dy1 - dx1)
			}
			c.Draw(x, y, color)
		}
		return
	}

	var ye float64
	if dy >= 0 {
		x, y, ye = x1, y1, y2
	} else {
		x, y, ye = x2, y2, y1
	}

	c.Draw(x, y, color)
	for y < ye {
		y++
		if py <= 0 {
			py += 2 * dx1
		} else {
			x += minorStep
			py += 2 * (dx1 - dy1)
		}
		c.Draw(x, y, color)
	}
}

// TransformModel rotates points by rot, scales them uniformly and then
// translates them to (x, y). The template is not modified.
func TransformModel(points []Point, x, y, rot, scale float64) []Point {
	sinR, cosR := math.Sincos(rot)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X*cosR-p.Y*sinR)*scale + x,
			Y: (p.X*sinR+p.Y*cosR)*scale + y,
		}
	}
	return out
}

// DrawWireframeModel draws the closed outline of a polygon template placed
// at (x, y) with rotation rot and uniform scale.
func (c *Canvas) DrawWireframeModel(points []Point, x, y, rot, scale float64, color uint32) {
	n := len(points)
	if n == 0 {
		return
	}
	verts := TransformModel(points, x, y, rot, scale)

	// n+1 edges: the closing edge back to vertex 0 is always included
	for i := 0; i < n+1; i++ {
		a := verts[i%n]
		b := verts[(i+1)%n]
		c.DrawLine(a.X, a.Y, b.X, b.Y, color)
	}
}

// DrawText plots the glyph bitmap of text with its top-left at (x, y).
// Nothing is drawn when the text cannot be rendered.
func (c *Canvas) DrawText(text string, x, y float64, color uint32) {
	if c.Glyphs == nil {
		return
	}
	bitmap, err := c.Glyphs.Render(text)
	if err != nil {
		logger().Debug("text not rendered", "text", text, "err", err)
		return
	}
	for cy, row := range bitmap {
		for cx, set := range row {
			if set {
				c.Draw(x+float64(cx), y+float64(cy), color)
			}
		}
	}
}

// RGBA converts the buffer to opaque 8-bit RGBA bytes, reusing dst when it
// has capacity for the whole frame.
func (c *Canvas) RGBA(dst []byte) []byte {
	n := len(c.Buffer) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, px := range c.Buffer {
		o := i * 4
		dst[o] = byte(px >> 16)
		dst[o+1] = byte(px >> 8)
		dst[o+2] = byte(px)
		dst[o+3] = 0xff
	}
	return dst
}
