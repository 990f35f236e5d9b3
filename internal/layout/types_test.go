package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39, 59))
	assert.False(t, r.Contains(9, 20))
	assert.False(t, r.Contains(40, 20))
}

func TestRectangleIntersects(t *testing.T) {
	r1 := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	r2 := Rect{X: 20, Y: 20, Width: 20, Height: 20}
	r3 := Rect{X: 50, Y: 50, Width: 10, Height: 10}

	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))
	assert.False(t, r1.Intersects(r3))
}

func TestViewportScrollBy(t *testing.T) {
	vp := NewViewport(80, 24)
	assert.Equal(t, 0, vp.ScrollY)

	vp.ScrollBy(10)
	assert.Equal(t, 10, vp.ScrollY)

	vp.ScrollBy(-5)
	assert.Equal(t, 5, vp.ScrollY)

	vp.ScrollBy(-10)
	assert.Equal(t, 0, vp.ScrollY)
}

func TestViewportScrollToClamped(t *testing.T) {
	vp := NewViewport(80, 24)
	vp.ScrollToClamped(100, 30)
	assert.Equal(t, 6, vp.ScrollY)

	vp.ScrollToClamped(2, 30)
	assert.Equal(t, 2, vp.ScrollY)
}

func TestViewportScrollByClamped(t *testing.T) {
	vp := NewViewport(80, 24)
	vp.ScrollByClamped(100, 30)
	assert.Equal(t, 6, vp.ScrollY)

	vp.ScrollByClamped(-100, 30)
	assert.Equal(t, 0, vp.ScrollY)
}

func TestEdgeSizesConstructors(t *testing.T) {
	assert.Equal(t, EdgeSizes{}, ZeroEdges())
	assert.Equal(t, EdgeSizes{Top: 2, Right: 2, Bottom: 2, Left: 2}, AllEdges(2))

	v := VerticalEdges(3)
	assert.Equal(t, 3, v.Top)
	assert.Equal(t, 3, v.Bottom)
	assert.Equal(t, 0, v.Left)
}

func TestLineWidth(t *testing.T) {
	var l Line
	l.AddSegment("Hello", TextStyle{})
	l.AddSegment(" ", TextStyle{})
	l.AddSegment("World", TextStyle{})

	assert.Equal(t, 11, l.Width())
}
