package game

import (
	"errors"
	"math"
	"testing"
)

const white = 0xffffff

// lit returns the coordinates of every non-zero pixel in row-major order
func lit(c *Canvas) []Point {
	var pts []Point
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) != 0 {
				pts = append(pts, Point{X: float64(x), Y: float64(y)})
			}
		}
	}
	return pts
}

func samePoints(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lit pixels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lit pixels = %v, want %v", got, want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(8, 4)
	c.Clear(0x123456)
	for i, px := range c.Buffer {
		if px != 0x123456 {
			t.Fatalf("pixel %d = %#x after Clear", i, px)
		}
	}
}

func TestCanvasDrawWraps(t *testing.T) {
	a := NewCanvas(160, 100)
	b := NewCanvas(160, 100)

	a.Draw(160, 0, white)
	b.Draw(0, 0, white)

	for i := range a.Buffer {
		if a.Buffer[i] != b.Buffer[i] {
			t.Fatalf("Draw(160,0) differs from Draw(0,0) at index %d", i)
		}
	}
	if b.At(0, 0) != white {
		t.Fatalf("pixel (0,0) not set")
	}

	c := NewCanvas(160, 100)
	c.Draw(-1, -1, white)
	if c.At(159, 99) != white {
		t.Fatalf("Draw(-1,-1) did not land on (159,99)")
	}
}

func TestCanvasDrawDropsFarOutOfRange(t *testing.T) {
	c := NewCanvas(16, 8)
	c.Draw(-1000, 3, white)
	c.Draw(3, 5000, white)
	c.Draw(-1e-20, 0, white)

	if len(c.Buffer) != 16*8 {
		t.Fatalf("buffer length = %d, want %d", len(c.Buffer), 16*8)
	}
	if pts := lit(c); len(pts) != 0 {
		t.Fatalf("out-of-range writes landed at %v", pts)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           []Point
	}{
		{
			name: "single_point",
			want: []Point{{0, 0}},
		},
		{
			name: "horizontal",
			x2:   5,
			want: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "horizontal_reversed",
			x1:   5,
			want: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "diagonal",
			x2:   3, y2: 3,
			want: []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "steep",
			x2:   1, y2: 4,
			want: []Point{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}},
		},
		{
			name: "anti_diagonal",
			x1:   3, y2: 3,
			want: []Point{{3, 0}, {2, 1}, {1, 2}, {0, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2, white)
			samePoints(t, lit(c), tt.want)
		})
	}
}

func TestDrawLineWrapsAcrossEdge(t *testing.T) {
	c := NewCanvas(160, 100)
	c.DrawLine(158, 10, 162, 10, white)

	want := []Point{{0, 10}, {1, 10}, {2, 10}, {158, 10}, {159, 10}}
	samePoints(t, lit(c), want)
}

func TestTransformModel(t *testing.T) {
	tri := []Point{{0, -5}, {-2.5, 2.5}, {2.5, 2.5}}

	got := TransformModel(tri, 10, 10, 0, 1)
	want := []Point{{10, 5}, {7.5, 12.5}, {12.5, 12.5}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tri[0] != (Point{0, -5}) {
		t.Fatalf("template mutated: %v", tri)
	}

	// rotate a quarter turn, then scale, then translate
	got = TransformModel([]Point{{1, 0}}, 3, 4, math.Pi/2, 2)
	if math.Abs(got[0].X-3) > 1e-9 || math.Abs(got[0].Y-6) > 1e-9 {
		t.Fatalf("rotated vertex = %v, want (3, 6)", got[0])
	}
}

func TestDrawWireframeModelMatchesEdges(t *testing.T) {
	tri := []Point{{0, -5}, {-2.5, 2.5}, {2.5, 2.5}}

	model := NewCanvas(40, 40)
	model.DrawWireframeModel(tri, 10, 10, 0, 1, white)

	edges := NewCanvas(40, 40)
	edges.DrawLine(10, 5, 7.5, 12.5, white)
	edges.DrawLine(7.5, 12.5, 12.5, 12.5, white)
	edges.DrawLine(12.5, 12.5, 10, 5, white)

	for i := range model.Buffer {
		if model.Buffer[i] != edges.Buffer[i] {
			t.Fatalf("wireframe differs from its three edges at index %d", i)
		}
	}
	if len(lit(model)) == 0 {
		t.Fatalf("wireframe drew nothing")
	}
}

func TestDrawWireframeModelEmpty(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawWireframeModel(nil, 5, 5, 0, 1, white)
	if pts := lit(c); len(pts) != 0 {
		t.Fatalf("empty model drew %v", pts)
	}
}

type stubGlyphs struct {
	bitmap [][]bool
	err    error
}

func (s stubGlyphs) Render(string) ([][]bool, error) {
	return s.bitmap, s.err
}

func TestDrawText(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Glyphs = stubGlyphs{bitmap: [][]bool{{true, false}, {false, true}}}
	c.DrawText("x", 3, 4, white)
	samePoints(t, lit(c), []Point{{3, 4}, {4, 5}})
}

func TestDrawTextFailureIsNoop(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Glyphs = stubGlyphs{bitmap: [][]bool{{true}}, err: errors.New("no font")}
	c.DrawText("x", 3, 4, white)
	if pts := lit(c); len(pts) != 0 {
		t.Fatalf("failed render drew %v", pts)
	}

	c.Glyphs = nil
	c.DrawText("x", 3, 4, white)
	if pts := lit(c); len(pts) != 0 {
		t.Fatalf("nil renderer drew %v", pts)
	}
}

func TestCanvasRGBA(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Buffer[0] = 0x112233
	c.Buffer[1] = 0xffff00

	got := c.RGBA(nil)
	want := []byte{0x11, 0x22, 0x33, 0xff, 0xff, 0xff, 0x00, 0xff}
	if string(got) != string(want) {
		t.Fatalf("RGBA = %v, want %v", got, want)
	}

	reused := c.RGBA(got)
	if &reused[0] != &got[0] {
		t.Fatalf("RGBA reallocated a buffer with enough capacity")
	}
}
