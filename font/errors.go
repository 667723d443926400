package font

import (
	"errors"
	"fmt"
)

var (
	// ErrEncodingExhausted indicates the reserved private codepoint range is fully allocated.
	ErrEncodingExhausted = errors.New("font: private codepoint range exhausted")
	// ErrNotSFD indicates the input does not start with a SplineFontDB header.
	ErrNotSFD = errors.New("font: not a SplineFontDB file")
	// ErrQuadraticOutlines indicates an SFD with quadratic (order-2) splines,
	// which must be converted to cubic by the font engine before patching.
	ErrQuadraticOutlines = errors.New("font: quadratic outlines unsupported, convert to cubic first")
)

// MissingGlyphError reports that a source font lacks a glyph the patcher requires.
type MissingGlyphError struct {
	FontName string
	Rune     rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("font: %s has no glyph for %q", e.FontName, e.Rune)
}
