// Package variants synthesizes the positional digit-glyph copies: for every
// digit 0-9 and every position class, a geometrically and decoratively
// transformed duplicate of the source glyph at a newly allocated private
// codepoint.
package variants

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/boxesandglue/numderline/config"
	"github.com/boxesandglue/numderline/feature"
	"github.com/boxesandglue/numderline/font"
)

// tracer writes to trace with key 'numderline.variants'.
func tracer() tracing.Trace {
	return tracing.Select("numderline.variants")
}

// Variant is one synthesized (digit, position class) glyph.
type Variant struct {
	Digit     int
	Class     int
	Name      string
	Codepoint rune
}

// Set is the generator's output, consumed by the rule compiler.
type Set struct {
	DigitNames []string   // base digit glyph names, value order
	DotName    string     // decimal point glyph name
	Classes    [][]string // variant glyph names per position class, value order
	Variants   []Variant
}

// alternatingGroup reports whether class c belongs to the second visual
// triplet, the one that alternating decorations and the secondary font apply
// to.
func alternatingGroup(c int) bool {
	return c >= 3 && c < 6
}

// commaClass reports whether class c sits at a non-final group boundary, the
// thousands/millions positions that carry a comma decoration. The ones place
// (class 0) never does.
func commaClass(c int) bool {
	return c == 3 || c == 6
}

// Generate synthesizes K×10 variants into dst and returns their names per
// class. sub, when non-nil, supplies the digit shapes for alternating groups.
// All required base glyphs are checked before the first codepoint is
// allocated; a missing one fails the whole font.
//
// Side effects: dst gains the variant glyphs, and with an all-digits squish
// scope the ten base digit glyphs are rescaled in place as well.
func Generate(dst *font.Font, sub *font.Font, p config.Params, alloc *font.Allocator) (*Set, error) {
	base, err := requireDigits(dst)
	if err != nil {
		return nil, err
	}
	dot, err := requireGlyph(dst, '.')
	if err != nil {
		return nil, err
	}

	var underscore, comma *font.Glyph
	switch p.Decoration {
	case config.DecorationUnderscore:
		if underscore, err = requireGlyph(dst, '_'); err != nil {
			return nil, err
		}
	case config.DecorationComma:
		if comma, err = requireGlyph(dst, ','); err != nil {
			return nil, err
		}
	}

	var subBase [10]*font.Glyph
	if sub != nil {
		sb, err := requireDigits(sub)
		if err != nil {
			return nil, err
		}
		subBase = sb
	}

	set := &Set{DotName: dot.Name}
	for _, g := range base {
		set.DigitNames = append(set.DigitNames, g.Name)
	}

	em := float64(dst.UnitsPerEm())
	k := p.Classes()
	for c := 0; c < k; c++ {
		names := make([]string, 10)
		for d := 0; d < 10; d++ {
			src := base[d]
			if sub != nil && alternatingGroup(c) {
				src = subBase[d]
			}

			cp, err := alloc.Next()
			if err != nil {
				return nil, err
			}
			g := &font.Glyph{
				Name:      fmt.Sprintf("%s.%d", feature.ClassName(c), d),
				Codepoint: cp,
				Width:     src.Width,
				Outline:   src.Outline.Clone(),
			}

			if p.Squish != 1.0 && (p.SquishScope == config.SquishAll || c >= 3) {
				g.Outline.Transform(font.Scale(p.Squish, 1))
			}
			if shift := feature.ShiftDirection(c) * p.ShiftAmount; shift != 0 {
				g.Outline.Transform(font.Translate(float64(shift), 0))
			}

			switch p.Decoration {
			case config.DecorationUnderscore:
				if alternatingGroup(c) {
					g.Outline.Append(underscore.Outline)
				}
			case config.DecorationComma:
				if commaClass(c) {
					addComma(g, comma, p.CommaSpacing == config.CompactSpacing)
				}
			}
			if p.Annotate {
				annotate(g, base[c], em)
			}

			dst.AddGlyph(g)
			names[d] = g.Name
			set.Variants = append(set.Variants, Variant{Digit: d, Class: c, Name: g.Name, Codepoint: cp})
		}
		set.Classes = append(set.Classes, names)
	}

	if p.SquishScope == config.SquishAll && p.Squish != 1.0 {
		for _, g := range base {
			g.Outline.Transform(font.Scale(p.Squish, 1))
		}
	}

	tracer().Debugf("synthesized %d digit variants in %d classes for %s", len(set.Variants), k, dst.FontName)
	return set, nil
}

func requireDigits(f *font.Font) ([10]*font.Glyph, error) {
	var out [10]*font.Glyph
	for d := 0; d < 10; d++ {
		g, err := requireGlyph(f, rune('0'+d))
		if err != nil {
			return out, err
		}
		out[d] = g
	}
	return out, nil
}

func requireGlyph(f *font.Font, r rune) (*font.Glyph, error) {
	g, ok := f.Glyph(r)
	if !ok {
		return nil, &font.MissingGlyphError{FontName: f.FontName, Rune: r}
	}
	return g, nil
}

// addComma composites a comma at the glyph's right edge. Compact spacing
// tucks a scaled-down comma into the existing advance; otherwise the advance
// grows by the comma's width.
func addComma(g *font.Glyph, comma *font.Glyph, compact bool) {
	layer := comma.Outline.Clone()
	xShift := float64(g.Width)
	if compact {
		layer.Transform(font.Scale(0.8, 0.8))
		xShift -= float64(comma.Width) / 2
	}
	layer.Transform(font.Translate(xShift, 0))
	g.Outline.Append(layer)
	if !compact {
		g.Width += comma.Width
	}
}

// annotate composites a miniature class-identifying glyph below the
// baseline, scaled to 30% about its own center line and dropped 0.6 em.
// Inspection aid only, never part of a production build.
func annotate(g *font.Glyph, label *font.Glyph, em float64) {
	layer := label.Outline.Clone()
	half := float64(label.Width) / 2
	layer.Transform(font.Translate(-half, 0))
	layer.Transform(font.Scale(0.3, 0.3))
	layer.Transform(font.Translate(half, 0))
	layer.Transform(font.Translate(0, -0.6*em))
	g.Outline.Append(layer)
}
