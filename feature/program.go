package feature

import (
	"fmt"
	"strings"
)

// Term is one element of a rule context: either a named glyph class or a
// single glyph.
type Term struct {
	class string
	glyph string
}

// ClassTerm references the glyph class with the given name (without '@').
func ClassTerm(name string) Term { return Term{class: name} }

// GlyphTerm references a single glyph by name.
func GlyphTerm(name string) Term { return Term{glyph: name} }

// IsZero reports whether the term is unset.
func (t Term) IsZero() bool { return t.class == "" && t.glyph == "" }

func (t Term) String() string {
	if t.class != "" {
		return "@" + t.class
	}
	return t.glyph
}

// RuleKind discriminates the three statement forms the program uses.
type RuleKind uint8

const (
	// RuleSub is a contextual single substitution.
	RuleSub RuleKind = iota
	// RuleIgnore matches a context and substitutes nothing, shielding the
	// matched glyph from later rules.
	RuleIgnore
	// RuleReverseSub is a reverse chaining single substitution, applied
	// right to left.
	RuleReverseSub
)

// Rule is one context-substitution statement. Backtrack and Lookahead are in
// textual (visual) order; Input is the single marked glyph position.
type Rule struct {
	Kind      RuleKind
	Backtrack []Term
	Input     Term
	Lookahead []Term
	By        Term // empty for RuleIgnore
}

func (r Rule) String() string {
	var b strings.Builder
	switch r.Kind {
	case RuleIgnore:
		b.WriteString("ignore sub ")
	case RuleReverseSub:
		b.WriteString("reversesub ")
	default:
		b.WriteString("sub ")
	}
	for _, t := range r.Backtrack {
		b.WriteString(t.String())
		b.WriteString(" ")
	}
	b.WriteString(r.Input.String())
	b.WriteString("'")
	for _, t := range r.Lookahead {
		b.WriteString(" ")
		b.WriteString(t.String())
	}
	if r.Kind != RuleIgnore {
		b.WriteString(" by ")
		b.WriteString(r.By.String())
	}
	b.WriteString(";")
	return b.String()
}

// Stage is an ordered group of rules with a fixed execution direction. The
// stage order of a program is significant: decimal rules must run before the
// integer rules, and boundary propagation before the reverse relabeling.
type Stage struct {
	Name    string
	Reverse bool
	Rules   []Rule
}

// Class is a named glyph class declaration.
type Class struct {
	Name   string
	Glyphs []string
}

// Program is the compiled grouping-rule program: language systems, glyph
// class declarations, and the ordered substitution stages of one feature.
type Program struct {
	LanguageSystems [][2]string
	Classes         []Class
	Feature         string
	Stages          []Stage
}

// Render serializes the program to feature-file syntax, suitable as input to
// an external shaping-table compiler.
func (p *Program) Render() string {
	var b strings.Builder
	for _, ls := range p.LanguageSystems {
		fmt.Fprintf(&b, "languagesystem %s %s;\n", ls[0], ls[1])
	}
	for _, c := range p.Classes {
		fmt.Fprintf(&b, "@%s=[%s];\n", c.Name, strings.Join(c.Glyphs, " "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "feature %s {\n", p.Feature)
	for _, st := range p.Stages {
		for _, r := range st.Rules {
			b.WriteString("    ")
			b.WriteString(r.String())
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "} %s;\n", p.Feature)
	return b.String()
}

// classMembers returns the program's class table keyed by class name.
func (p *Program) classMembers() map[string][]string {
	m := make(map[string][]string, len(p.Classes))
	for _, c := range p.Classes {
		m[c.Name] = c.Glyphs
	}
	return m
}
