package font

// Private codepoint range used for synthesized glyph variants.
// 0xE900 starts an area spanning until 0xF000 that nothing popular uses;
// checked against the Apple glyph browser and Nerd Font.
const (
	PrivateLo rune = 0xE900
	PrivateHi rune = 0xF000
)

// Allocator hands out unused codepoints from a reserved private range.
// Each font being patched gets its own allocator.
type Allocator struct {
	next rune
	end  rune
}

// NewAllocator returns an allocator over [lo, hi).
func NewAllocator(lo, hi rune) *Allocator {
	return &Allocator{next: lo, end: hi}
}

// NewPrivateAllocator returns an allocator over the default private range.
func NewPrivateAllocator() *Allocator {
	return NewAllocator(PrivateLo, PrivateHi)
}

// Next returns the next unused codepoint, or ErrEncodingExhausted if the
// range is spent.
func (a *Allocator) Next() (rune, error) {
	if a.next >= a.end {
		return 0, ErrEncodingExhausted
	}
	r := a.next
	a.next++
	return r, nil
}

// Remaining reports how many codepoints are left.
func (a *Allocator) Remaining() int {
	return int(a.end - a.next)
}
