package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x0, y0, x1, y1 float64) Outline {
	return Outline{Segments: []Segment{
		{Op: SegmentMoveTo, Args: [3]Point{{x0, y0}}},
		{Op: SegmentLineTo, Args: [3]Point{{x1, y0}}},
		{Op: SegmentLineTo, Args: [3]Point{{x1, y1}}},
		{Op: SegmentLineTo, Args: [3]Point{{x0, y1}}},
	}}
}

func TestMatrixCompose(t *testing.T) {
	m := Scale(2, 1).Mul(Translate(100, 0))
	p := m.Apply(Point{X: 10, Y: 5})
	assert.Equal(t, Point{X: 120, Y: 5}, p)

	// Order matters: translating first scales the offset too.
	m = Translate(100, 0).Mul(Scale(2, 1))
	p = m.Apply(Point{X: 10, Y: 5})
	assert.Equal(t, Point{X: 220, Y: 5}, p)

	assert.Equal(t, Point{X: 10, Y: 5}, Identity().Apply(Point{X: 10, Y: 5}))
}

func TestOutlineTransform(t *testing.T) {
	o := box(0, 0, 100, 100)
	o.Transform(Translate(50, -10))
	assert.Equal(t, Point{X: 50, Y: -10}, o.Segments[0].Args[0])
	assert.Equal(t, Point{X: 150, Y: 90}, o.Segments[2].Args[0])
}

func TestOutlineTransformCurvePoints(t *testing.T) {
	o := Outline{Segments: []Segment{
		{Op: SegmentMoveTo, Args: [3]Point{{0, 0}}},
		{Op: SegmentCubeTo, Args: [3]Point{{10, 10}, {20, 20}, {30, 30}}},
	}}
	o.Transform(Scale(2, 2))
	assert.Equal(t, [3]Point{{20, 20}, {40, 40}, {60, 60}}, o.Segments[1].Args)
}

func TestCloneIsIndependent(t *testing.T) {
	a := box(0, 0, 10, 10)
	b := a.Clone()
	b.Transform(Translate(5, 5))
	assert.Equal(t, Point{X: 0, Y: 0}, a.Segments[0].Args[0])
	assert.Equal(t, Point{X: 5, Y: 5}, b.Segments[0].Args[0])
}

func TestAppendCopies(t *testing.T) {
	a := box(0, 0, 10, 10)
	decoration := box(20, 0, 30, 10)
	a.Append(decoration)
	require.Len(t, a.Segments, 8)

	decoration.Transform(Translate(1, 1))
	assert.Equal(t, Point{X: 20, Y: 0}, a.Segments[4].Args[0], "appended contour must not alias its source")
}

func TestAllocator(t *testing.T) {
	a := NewAllocator(0xE900, 0xE903)
	r1, err := a.Next()
	require.NoError(t, err)
	r2, err := a.Next()
	require.NoError(t, err)
	r3, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, []rune{0xE900, 0xE901, 0xE902}, []rune{r1, r2, r3})
	assert.Equal(t, 0, a.Remaining())

	_, err = a.Next()
	assert.ErrorIs(t, err, ErrEncodingExhausted)
}

func TestPrivateRangeFitsAllVariants(t *testing.T) {
	a := NewPrivateAllocator()
	// 7 classes × 10 digits is far below the reserved range's capacity.
	assert.GreaterOrEqual(t, a.Remaining(), 70)
}
