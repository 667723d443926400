package font

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSFD reads a font from FontForge's textual SplineFontDB format.
// Only the pieces the patcher edits are modeled (names, metrics, encodings,
// outlines); every other header and glyph line is preserved verbatim and
// re-emitted by WriteSFD.
func ParseSFD(r io.Reader) (*Font, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		return nil, ErrNotSFD
	}
	if !strings.HasPrefix(sc.Text(), "SplineFontDB:") {
		return nil, ErrNotSFD
	}

	f := New("", "", "", 0, 0)

	// Header section, up to BeginChars.
	inChars := false
	for sc.Scan() {
		line := sc.Text()
		key, val := splitKV(line)
		switch key {
		case "FontName":
			f.FontName = val
		case "FullName":
			f.FullName = val
		case "FamilyName":
			f.FamilyName = val
		case "Ascent":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("font: bad Ascent %q: %w", val, err)
			}
			f.Ascent = n
		case "Descent":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("font: bad Descent %q: %w", val, err)
			}
			f.Descent = n
		case "Order2":
			if val == "1" {
				return nil, ErrQuadraticOutlines
			}
		case "Layer":
			// Layer: <index> <order2> "<name>" ...
			fs := strings.Fields(val)
			if len(fs) >= 2 && fs[1] == "1" {
				return nil, ErrQuadraticOutlines
			}
			f.headerExtra = append(f.headerExtra, line)
		case "LangName":
			f.langNames = append(f.langNames, line)
		case "Encoding":
			// Forced to UnicodeFull on emit.
		case "BeginChars":
			inChars = true
		default:
			f.headerExtra = append(f.headerExtra, line)
		}
		if inChars {
			break
		}
	}
	if !inChars {
		return nil, fmt.Errorf("font: missing BeginChars section: %w", ErrNotSFD)
	}

	if err := parseChars(sc, f); err != nil {
		return nil, err
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("font: reading SFD: %w", err)
	}
	tracer().Debugf("parsed SFD font %s with %d glyphs", f.FontName, f.NumGlyphs())
	return f, nil
}

func parseChars(sc *bufio.Scanner, f *Font) error {
	var cur *Glyph
	sawOutline := false

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		key, val := splitKV(trimmed)

		switch {
		case trimmed == "EndChars" || trimmed == "EndSplineFont":
			if cur != nil {
				return fmt.Errorf("font: glyph %s not closed before %s", cur.Name, trimmed)
			}
			return nil

		case key == "StartChar":
			if cur != nil {
				return fmt.Errorf("font: nested StartChar %s", val)
			}
			cur = &Glyph{Name: val, Codepoint: -1}
			sawOutline = false

		case cur == nil:
			// Stray line between glyphs; tolerate.

		case trimmed == "EndChar":
			f.AddGlyph(cur)
			cur = nil

		case key == "Encoding":
			fs := strings.Fields(val)
			if len(fs) >= 2 {
				if uni, err := strconv.Atoi(fs[1]); err == nil && uni >= 0 {
					cur.Codepoint = rune(uni)
				}
			}

		case key == "Width":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("font: glyph %s: bad Width %q: %w", cur.Name, val, err)
			}
			cur.Width = n

		case trimmed == "SplineSet":
			outline, err := parseSplineSet(sc, cur.Name)
			if err != nil {
				return err
			}
			cur.Outline = outline
			sawOutline = true

		default:
			if sawOutline {
				cur.tail = append(cur.tail, line)
			} else {
				cur.head = append(cur.head, line)
			}
		}
	}
	return fmt.Errorf("font: missing EndChars: %w", ErrNotSFD)
}

func parseSplineSet(sc *bufio.Scanner, glyphName string) (Outline, error) {
	var o Outline
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "EndSplineSet" {
			return o, nil
		}
		seg, err := parseSplineLine(line)
		if err != nil {
			return o, fmt.Errorf("font: glyph %s: %w", glyphName, err)
		}
		o.Segments = append(o.Segments, seg)
	}
	return o, fmt.Errorf("font: glyph %s: unterminated SplineSet: %w", glyphName, ErrNotSFD)
}

// parseSplineLine parses one SFD point line:
//
//	x y m <flags>                  move
//	x y l <flags>                  line
//	x1 y1 x2 y2 x y c <flags>      cubic curve
func parseSplineLine(line string) (Segment, error) {
	fs := strings.Fields(line)
	if len(fs) < 4 {
		return Segment{}, fmt.Errorf("short spline line %q", line)
	}
	op := fs[len(fs)-2]
	flags := fs[len(fs)-1]
	coords := fs[:len(fs)-2]

	var seg Segment
	var want int
	switch op {
	case "m":
		seg.Op, want = SegmentMoveTo, 2
	case "l":
		seg.Op, want = SegmentLineTo, 2
	case "c":
		seg.Op, want = SegmentCubeTo, 6
	default:
		return Segment{}, fmt.Errorf("unknown spline op %q in %q", op, line)
	}
	if len(coords) != want {
		return Segment{}, fmt.Errorf("spline op %q wants %d coordinates, got %d in %q", op, want, len(coords), line)
	}
	for i := 0; i < want/2; i++ {
		x, err := strconv.ParseFloat(coords[2*i], 64)
		if err != nil {
			return Segment{}, fmt.Errorf("bad coordinate %q in %q", coords[2*i], line)
		}
		y, err := strconv.ParseFloat(coords[2*i+1], 64)
		if err != nil {
			return Segment{}, fmt.Errorf("bad coordinate %q in %q", coords[2*i+1], line)
		}
		seg.Args[i] = Point{X: x, Y: y}
	}
	seg.Flags = flags
	return seg, nil
}

// splitKV splits an SFD "Key: value" line. Lines without a colon return the
// whole line as key and an empty value.
func splitKV(line string) (string, string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
