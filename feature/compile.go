package feature

import (
	"fmt"
)

// NumClasses is the number of position classes the rule program references:
// the boundary class nd0 plus the relabeling cycle nd1-nd6.
const NumClasses = 7

// DigitsClass is the name of the class holding the unclassified base digits.
const DigitsClass = "digits"

// ClassName returns the glyph-class name for position class c.
func ClassName(c int) string {
	return fmt.Sprintf("nd%d", c)
}

// languageSystems registered by the program. Digit runs appear in code and
// prose across all of these scripts.
var languageSystems = [][2]string{
	{"DFLT", "dflt"},
	{"latn", "dflt"},
	{"cyrl", "dflt"},
	{"grek", "dflt"},
	{"kana", "dflt"},
}

// Compile builds the grouping rule program.
//
// digits are the ten base digit glyph names in value order, dot is the
// decimal-point glyph name, and classes holds the ten variant glyph names for
// each position class, also in value order. decimals selects whether the
// fractional part is grouped or passed through.
//
// Handing the compiler fewer classes (or classes of the wrong arity) than its
// rules reference is a programmer error and panics.
func Compile(digits []string, dot string, classes [][]string, decimals bool) *Program {
	if len(digits) != 10 {
		panic(fmt.Sprintf("feature: need 10 base digit names, got %d", len(digits)))
	}
	if len(classes) < NumClasses {
		panic(fmt.Sprintf("feature: rule program references %d position classes, got %d", NumClasses, len(classes)))
	}
	for c, names := range classes {
		if len(names) != 10 {
			panic(fmt.Sprintf("feature: position class %d has %d variants, want 10", c, len(names)))
		}
	}

	p := &Program{
		LanguageSystems: languageSystems,
		Feature:         "calt",
	}
	p.Classes = append(p.Classes, Class{Name: DigitsClass, Glyphs: digits})
	for c := 0; c < NumClasses; c++ {
		p.Classes = append(p.Classes, Class{Name: ClassName(c), Glyphs: classes[c]})
	}

	p.Stages = append(p.Stages, decimalStage(dot, decimals))
	p.Stages = append(p.Stages, boundaryStage(), propagateStage(), relabelStage())
	return p
}

// decimalStage handles digits following the decimal point. It must come
// first: its rules consume fractional digits before the integer-part rules
// can see them.
func decimalStage(dot string, decimals bool) Stage {
	st := Stage{Name: "decimal"}
	digits := ClassTerm(DigitsClass)

	if !decimals {
		// A digit right after the point stays untouched, and a digit right
		// after another plain digit maps to itself so the integer rules
		// cannot bleed into the rest of the fraction.
		st.Rules = append(st.Rules,
			Rule{Kind: RuleIgnore, Backtrack: []Term{GlyphTerm(dot)}, Input: digits},
			Rule{Kind: RuleSub, Backtrack: []Term{digits}, Input: digits, By: digits},
		)
		return st
	}

	// Forward cycle anchored at the point itself: 2,1,6,5,4,3,2,1,6,…
	// so the fraction groups away from the point, not from its far end.
	st.Rules = append(st.Rules,
		Rule{Kind: RuleSub, Backtrack: []Term{GlyphTerm(dot)}, Input: digits, By: ClassTerm(ClassName(2))})
	cycle := []int{2, 1, 6, 5, 4, 3}
	for i, cur := range cycle {
		next := cycle[(i+1)%len(cycle)]
		st.Rules = append(st.Rules, Rule{
			Kind:      RuleSub,
			Backtrack: []Term{ClassTerm(ClassName(cur))},
			Input:     digits,
			By:        ClassTerm(ClassName(next)),
		})
	}
	return st
}

// boundaryStage marks a digit followed by three more digits as the boundary
// class. Three glyphs of lookahead suffice for any run length, and runs of
// three or fewer digits never match.
func boundaryStage() Stage {
	digits := ClassTerm(DigitsClass)
	return Stage{
		Name: "boundary",
		Rules: []Rule{{
			Kind:      RuleSub,
			Input:     digits,
			Lookahead: []Term{digits, digits, digits},
			By:        ClassTerm(ClassName(0)),
		}},
	}
}

// propagateStage collapses the rest of a run into the boundary class: once
// any digit is nd0, every unclassified digit after it becomes nd0 too.
func propagateStage() Stage {
	return Stage{
		Name: "propagate",
		Rules: []Rule{{
			Kind:      RuleSub,
			Backtrack: []Term{ClassTerm(ClassName(0))},
			Input:     ClassTerm(DigitsClass),
			By:        ClassTerm(ClassName(0)),
		}},
	}
}

// relabelStage walks right to left and reassigns each nd0 that precedes an
// already-relabeled digit to the next class in the cycle, wrapping 6 back to
// 1 so the pattern repeats indefinitely.
func relabelStage() Stage {
	st := Stage{Name: "relabel", Reverse: true}
	nd0 := ClassTerm(ClassName(0))
	for c := 0; c < NumClasses; c++ {
		next := c + 1
		if next >= NumClasses {
			next = 1
		}
		st.Rules = append(st.Rules, Rule{
			Kind:      RuleReverseSub,
			Input:     nd0,
			Lookahead: []Term{ClassTerm(ClassName(c))},
			By:        ClassTerm(ClassName(next)),
		})
	}
	return st
}
