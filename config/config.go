// Package config resolves the patcher's user-facing options into a single
// immutable parameter record and derives the canonical variant-set name used
// when renaming patched fonts.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Decoration selects what, if anything, is composited onto group-boundary
// digit variants.
type Decoration uint8

const (
	DecorationNone Decoration = iota
	DecorationUnderscore
	DecorationComma
)

func (d Decoration) String() string {
	switch d {
	case DecorationUnderscore:
		return "underscore"
	case DecorationComma:
		return "comma"
	default:
		return "none"
	}
}

// SquishScope selects which digits the horizontal squish applies to.
type SquishScope uint8

const (
	// SquishGroups squishes only the position classes beyond the first
	// triplet (the 4th digit and up).
	SquishGroups SquishScope = iota
	// SquishAll squishes every variant and the ten base digit glyphs, so
	// ungrouped stray digits match the visual weight of grouped ones.
	SquishAll
)

// DecimalMode selects how digits after the decimal point are treated.
type DecimalMode uint8

const (
	// DecimalGrouped classifies fractional digits with a forward cycle
	// anchored at the decimal point.
	DecimalGrouped DecimalMode = iota
	// DecimalPassthrough leaves fractional digits untouched.
	DecimalPassthrough
)

// CommaSpacing selects how comma decorations affect advance widths.
type CommaSpacing uint8

const (
	// PreserveSpacing widens decorated variants by the comma's advance.
	PreserveSpacing CommaSpacing = iota
	// CompactSpacing tucks a scaled-down comma into the existing advance,
	// keeping the font monospaced.
	CompactSpacing
)

// numPositionClasses is the number of positional buckets a digit run cycles
// through: the boundary class nd0 plus the six-step relabeling cycle nd1-nd6.
const numPositionClasses = 7

// Options is the raw command surface, prior to resolution.
type Options struct {
	Group           bool // preset: shift 100, squish 0.85 everywhere, no underline
	RenameFont      bool
	Underline       bool
	Decimals        bool
	AddCommas       bool
	SpacelessCommas bool
	ShiftAmount     int
	Squish          float64
	SquishAll       bool
	SubFontPath     string
	DebugAnnotate   bool
}

// DefaultOptions mirrors the command-line defaults.
func DefaultOptions() Options {
	return Options{
		RenameFont: true,
		Underline:  true,
		Decimals:   true,
		Squish:     1.0,
	}
}

// Params is the resolved, immutable parameter record driving the pipeline.
type Params struct {
	ShiftAmount  int
	Squish       float64
	SquishScope  SquishScope
	DecimalMode  DecimalMode
	Decoration   Decoration
	CommaSpacing CommaSpacing
	SubFontPath  string
	Annotate     bool
	Rename       bool
}

// Error reports an inconsistent or nonsensical option combination. It is
// detected before any font is touched; no partial output is written.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "config: " + e.Reason
}

func errf(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// Resolve turns raw options into a consistent parameter record.
func Resolve(o Options) (Params, error) {
	if o.Group {
		o.Underline = false
		o.ShiftAmount = 100
		o.Squish = 0.85
		o.SquishAll = true
	}

	if o.Squish <= 0 {
		return Params{}, errf("squish factor must be positive, got %v", o.Squish)
	}
	if o.SpacelessCommas && !o.AddCommas {
		return Params{}, errf("spaceless commas require comma decoration")
	}
	if o.AddCommas && o.Underline {
		return Params{}, errf("commas and underlines are mutually exclusive decorations, disable underlining")
	}
	p := Params{
		ShiftAmount: o.ShiftAmount,
		Squish:      o.Squish,
		SubFontPath: o.SubFontPath,
		Annotate:    o.DebugAnnotate,
		Rename:      o.RenameFont,
	}
	if o.SquishAll {
		p.SquishScope = SquishAll
	}
	if !o.Decimals {
		p.DecimalMode = DecimalPassthrough
	}
	switch {
	case o.AddCommas:
		p.Decoration = DecorationComma
	case o.Underline:
		p.Decoration = DecorationUnderscore
	}
	if o.SpacelessCommas {
		p.CommaSpacing = CompactSpacing
	}
	return p, nil
}

// Classes returns K, the number of position classes the variant generator
// synthesizes and the rule program references.
func (p Params) Classes() int {
	return numPositionClasses
}

// Suffix derives the descriptive name suffix embedded in patched font names.
// It is a pure function of the parameter record: identical configurations
// always produce identical suffixes.
func (p Params) Suffix() string {
	var b strings.Builder
	b.WriteString("N")
	switch p.Decoration {
	case DecorationComma:
		if p.CommaSpacing == CompactSpacing {
			b.WriteString("onoCommas")
		} else {
			b.WriteString("ommas")
		}
	case DecorationUnderscore:
		b.WriteString("umderline")
	}
	if p.SubFontPath != "" {
		b.WriteString("Sub")
	}
	// Cleaner name for the expected common combination.
	if p.ShiftAmount == 100 && p.Squish == 0.85 && p.SquishScope == SquishAll {
		b.WriteString("Group")
	} else {
		if p.ShiftAmount != 0 {
			fmt.Fprintf(&b, "Shift%d", p.ShiftAmount)
		}
		if p.Squish != 1.0 {
			squish := strconv.FormatFloat(p.Squish, 'g', -1, 64)
			b.WriteString("Squish" + strings.ReplaceAll(squish, ".", "p"))
			if p.SquishScope == SquishAll {
				b.WriteString("All")
			}
		}
	}
	if p.Annotate {
		b.WriteString("Debug")
	}
	if p.DecimalMode == DecimalPassthrough {
		b.WriteString("NoDecimals")
	}
	return b.String()
}
