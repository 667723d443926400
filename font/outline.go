package font

// SegmentOp represents the type of a path segment operation.
type SegmentOp uint8

const (
	// SegmentMoveTo moves the current point to a new position (starts a new contour).
	SegmentMoveTo SegmentOp = iota
	// SegmentLineTo draws a straight line to the endpoint.
	SegmentLineTo
	// SegmentCubeTo draws a cubic Bézier curve. Args: [0]=ctrl1, [1]=ctrl2, [2]=endpoint.
	SegmentCubeTo
)

// Point is a 2D point in glyph outline coordinates (font units).
type Point struct{ X, Y float64 }

// Segment is a single path segment in a glyph outline.
// Flags carries the raw SFD point-flag field for the segment's on-curve point
// so outlines round-trip through the codec unchanged.
type Segment struct {
	Op    SegmentOp
	Args  [3]Point
	Flags string
}

// points returns how many of Args are meaningful for the segment's op.
func (s Segment) points() int {
	if s.Op == SegmentCubeTo {
		return 3
	}
	return 1
}

// Outline contains the path segments of a glyph.
type Outline struct {
	Segments []Segment
}

// Clone returns a deep copy of the outline.
func (o Outline) Clone() Outline {
	segs := make([]Segment, len(o.Segments))
	copy(segs, o.Segments)
	return Outline{Segments: segs}
}

// Transform applies an affine transform to every point of the outline in place.
func (o *Outline) Transform(m Matrix) {
	for i := range o.Segments {
		seg := &o.Segments[i]
		for j := 0; j < seg.points(); j++ {
			seg.Args[j] = m.Apply(seg.Args[j])
		}
	}
}

// Append adds the contours of other to the outline. The two outlines must not
// share backing storage afterwards, so other's segments are copied.
func (o *Outline) Append(other Outline) {
	o.Segments = append(o.Segments, other.Clone().Segments...)
}
