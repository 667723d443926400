// Package font provides the in-memory font model the patcher operates on:
// named glyphs with cubic outlines, affine transforms, a private-range
// codepoint allocator, and a codec for FontForge's textual SFD format, which
// is the interchange format with the external font-editing engine.
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'numderline.font'.
func tracer() tracing.Trace {
	return tracing.Select("numderline.font")
}

// Glyph is a single glyph of a font.
type Glyph struct {
	Name      string
	Codepoint rune // -1 if unencoded
	GID       int
	Width     int
	Outline   Outline

	// SFD body lines the model does not interpret (hints, anchors, flags),
	// preserved verbatim. head lines precede the outline, tail lines follow it.
	head []string
	tail []string
}

// Clone returns a deep copy of the glyph.
func (g *Glyph) Clone() *Glyph {
	c := *g
	c.Outline = g.Outline.Clone()
	c.head = append([]string(nil), g.head...)
	c.tail = append([]string(nil), g.tail...)
	return &c
}

// Font is an in-memory font under edit.
type Font struct {
	FontName   string // PostScript name
	FamilyName string
	FullName   string
	Ascent     int
	Descent    int

	glyphs []*Glyph
	byCode map[rune]*Glyph
	byName map[string]*Glyph

	// Preserved SFD header lines the model does not interpret, in order.
	headerExtra []string
	// LangName records (SFNT name table), preserved plus appended.
	langNames []string
}

// New returns an empty font with the given names and vertical metrics.
func New(fontName, familyName, fullName string, ascent, descent int) *Font {
	return &Font{
		FontName:   fontName,
		FamilyName: familyName,
		FullName:   fullName,
		Ascent:     ascent,
		Descent:    descent,
		byCode:     make(map[rune]*Glyph),
		byName:     make(map[string]*Glyph),
	}
}

// UnitsPerEm returns the font's em size.
func (f *Font) UnitsPerEm() int {
	return f.Ascent + f.Descent
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyphs returns the font's glyphs in glyph-ID order. The slice is shared;
// callers must not reorder it.
func (f *Font) Glyphs() []*Glyph {
	return f.glyphs
}

// Glyph returns the glyph encoded at codepoint r.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	g, ok := f.byCode[r]
	return g, ok
}

// GlyphByName returns the glyph with the given name.
func (f *Font) GlyphByName(name string) (*Glyph, bool) {
	g, ok := f.byName[name]
	return g, ok
}

// AddGlyph inserts g into the font, assigning it the next glyph ID.
// A glyph already present at g's codepoint or name is replaced in the index
// but keeps its slot in the glyph list.
func (f *Font) AddGlyph(g *Glyph) {
	g.GID = len(f.glyphs)
	f.glyphs = append(f.glyphs, g)
	if g.Codepoint >= 0 {
		f.byCode[g.Codepoint] = g
	}
	if g.Name != "" {
		f.byName[g.Name] = g
	}
}

// AddLangName appends a raw SFD LangName record (an SFNT name-table entry).
func (f *Font) AddLangName(line string) {
	f.langNames = append(f.langNames, line)
}
