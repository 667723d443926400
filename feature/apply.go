package feature

// Reference executor for rule programs.
//
// Apply mirrors how a shaping engine runs the compiled feature over a glyph
// buffer. All forward stages form one left-to-right scan, exactly as their
// statements share a lookup in the rendered feature: at every position the
// rules are tried in stage order and at most one applies, and an ignore rule
// shields its position from every later rule. Reverse stages scan right to
// left with in-place substitution, so a rule's lookahead sees the output of
// substitutions made further right, matching reverse chaining single
// substitution in GSUB.
//
// The executor exists to validate the program without a shaping engine; the
// patcher itself only renders the program to text.

// Apply runs the program over a sequence of glyph names and returns the
// rewritten sequence. The input is not modified.
func (p *Program) Apply(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	classes := p.classMembers()

	var forward []Rule
	flush := func() {
		if len(forward) == 0 {
			return
		}
		for i := range out {
			applyAt(out, i, forward, classes)
		}
		forward = nil
	}

	for _, st := range p.Stages {
		if !st.Reverse {
			forward = append(forward, st.Rules...)
			continue
		}
		flush()
		for i := len(out) - 1; i >= 0; i-- {
			applyAt(out, i, st.Rules, classes)
		}
	}
	flush()
	return out
}

// applyAt tries the rules at position i and applies the first match.
func applyAt(buf []string, i int, rules []Rule, classes map[string][]string) {
	for _, r := range rules {
		if !matches(buf, i, r, classes) {
			continue
		}
		if r.Kind != RuleIgnore {
			buf[i] = replacement(buf[i], r, classes)
		}
		return
	}
}

func matches(buf []string, i int, r Rule, classes map[string][]string) bool {
	if !termMatches(buf[i], r.Input, classes) {
		return false
	}
	if i < len(r.Backtrack) {
		return false
	}
	for j, t := range r.Backtrack {
		// Backtrack terms are in textual order, ending just before i.
		if !termMatches(buf[i-len(r.Backtrack)+j], t, classes) {
			return false
		}
	}
	for j, t := range r.Lookahead {
		pos := i + 1 + j
		if pos >= len(buf) || !termMatches(buf[pos], t, classes) {
			return false
		}
	}
	return true
}

func termMatches(name string, t Term, classes map[string][]string) bool {
	if t.class != "" {
		for _, g := range classes[t.class] {
			if g == name {
				return true
			}
		}
		return false
	}
	return t.glyph == name
}

// replacement maps a matched glyph to its substitute: same index in the
// output class as in the input class, or the literal glyph for glyph terms.
func replacement(name string, r Rule, classes map[string][]string) string {
	if r.By.glyph != "" {
		return r.By.glyph
	}
	in := classes[r.Input.class]
	out := classes[r.By.class]
	for idx, g := range in {
		if g == name {
			if idx < len(out) {
				return out[idx]
			}
			break
		}
	}
	return name
}
