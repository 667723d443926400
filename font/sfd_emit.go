package font

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// unicodeFullSize is the encoding slot count FontForge uses for UnicodeFull.
const unicodeFullSize = 1114112

// WriteSFD writes the font in FontForge's textual SplineFontDB format.
// The encoding is always emitted as UnicodeFull so the private-range variant
// glyphs keep their codepoints.
func (f *Font) WriteSFD(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "SplineFontDB: 3.0")
	fmt.Fprintf(bw, "FontName: %s\n", f.FontName)
	fmt.Fprintf(bw, "FullName: %s\n", f.FullName)
	fmt.Fprintf(bw, "FamilyName: %s\n", f.FamilyName)
	fmt.Fprintf(bw, "Ascent: %d\n", f.Ascent)
	fmt.Fprintf(bw, "Descent: %d\n", f.Descent)
	for _, line := range f.headerExtra {
		fmt.Fprintln(bw, line)
	}
	for _, line := range f.langNames {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, "Encoding: UnicodeFull")
	fmt.Fprintf(bw, "BeginChars: %d %d\n", unicodeFullSize, len(f.glyphs))

	for _, g := range f.glyphs {
		writeGlyph(bw, g)
	}

	fmt.Fprintln(bw, "EndChars")
	fmt.Fprintln(bw, "EndSplineFont")
	return bw.Flush()
}

func writeGlyph(bw *bufio.Writer, g *Glyph) {
	fmt.Fprintf(bw, "StartChar: %s\n", g.Name)
	cp := -1
	if g.Codepoint >= 0 {
		cp = int(g.Codepoint)
	}
	fmt.Fprintf(bw, "Encoding: %d %d %d\n", cp, cp, g.GID)
	fmt.Fprintf(bw, "Width: %d\n", g.Width)
	for _, line := range g.head {
		fmt.Fprintln(bw, line)
	}
	if len(g.Outline.Segments) > 0 {
		fmt.Fprintln(bw, "SplineSet")
		for _, seg := range g.Outline.Segments {
			writeSegment(bw, seg)
		}
		fmt.Fprintln(bw, "EndSplineSet")
	}
	for _, line := range g.tail {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, "EndChar")
}

func writeSegment(bw *bufio.Writer, seg Segment) {
	var op string
	switch seg.Op {
	case SegmentMoveTo:
		op = "m"
	case SegmentLineTo:
		op = "l"
	case SegmentCubeTo:
		op = "c"
	}
	for i := 0; i < seg.points(); i++ {
		fmt.Fprintf(bw, "%s %s ", coord(seg.Args[i].X), coord(seg.Args[i].Y))
	}
	flags := seg.Flags
	if flags == "" {
		flags = "0"
	}
	fmt.Fprintf(bw, "%s %s\n", op, flags)
}

// coord formats a coordinate the way FontForge does: integers without a
// decimal point, fractions with the shortest exact representation.
func coord(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
