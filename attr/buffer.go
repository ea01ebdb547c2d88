package attr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Range addresses a half-open rune interval [Start, End) of a buffer.
// Negative End means "to the end of the buffer".
type Range struct {
	Start int
	End   int
}

// All addresses the whole buffer regardless of its length.
var All = Range{Start: 0, End: -1}

// Clamp restricts the range to a buffer of n runes. Out of bounds values
// never panic - they are silently pulled into [0, n].
func (r Range) Clamp(n int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.Start > n {
		r.Start = n
	}
	if r.End < 0 || r.End > n {
		r.End = n
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Len returns range length in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether range addresses no runes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Run is a maximal contiguous range of a buffer sharing one attribute map.
type Run struct {
	Start int
	End   int
	Attrs Map
}

// Buffer is styled text: runes plus an ordered, non-overlapping span list
// covering the whole text. All mutating operations keep the span list
// normalized (adjacent spans with equal maps are coalesced, empty spans are
// dropped). A zero-length buffer has no spans at all.
//
// A Buffer is not safe for concurrent mutation - each resolution pass owns
// its buffer exclusively.
type Buffer struct {
	runes []rune
	spans []Run
}

// NewBuffer creates a buffer with a single unstyled run covering text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{runes: []rune(text)}
	if len(b.runes) > 0 {
		b.spans = []Run{{Start: 0, End: len(b.runes), Attrs: Map{}}}
	}
	return b
}

// Len returns buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// String returns the plain text of the buffer.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Runes returns a copy of the buffer content.
func (b *Buffer) Runes() []rune {
	return slices.Clone(b.runes)
}

// Slice returns the plain text of the given range.
func (b *Buffer) Slice(rng Range) string {
	rng = rng.Clamp(len(b.runes))
	return string(b.runes[rng.Start:rng.End])
}

// AttrsAt returns the attribute map effective at rune i. The returned map is
// borrowed - callers must not mutate it. Out of range positions yield nil.
func (b *Buffer) AttrsAt(i int) Map {
	for _, sp := range b.spans {
		if i >= sp.Start && i < sp.End {
			return sp.Attrs
		}
	}
	return nil
}

// Runs returns the coalesced attribute runs covering the whole buffer.
// Maps are borrowed, treat them as read-only.
func (b *Buffer) Runs() []Run {
	return slices.Clone(b.spans)
}

// RunsIn returns the attribute runs intersecting the given range, clipped to
// it. Maps are borrowed, treat them as read-only.
func (b *Buffer) RunsIn(rng Range) []Run {
	rng = rng.Clamp(len(b.runes))
	var out []Run
	for _, sp := range b.spans {
		if sp.End <= rng.Start || sp.Start >= rng.End {
			continue
		}
		out = append(out, Run{Start: max(sp.Start, rng.Start), End: min(sp.End, rng.End), Attrs: sp.Attrs})
	}
	return out
}

// SetAttrs replaces all attributes in the range with a copy of m.
func (b *Buffer) SetAttrs(rng Range, m Map) {
	rng = rng.Clamp(len(b.runes))
	if rng.Empty() {
		return
	}
	b.split(rng.Start)
	b.split(rng.End)
	for i := range b.spans {
		if b.spans[i].Start >= rng.Start && b.spans[i].End <= rng.End {
			b.spans[i].Attrs = m.Clone()
			if b.spans[i].Attrs == nil {
				b.spans[i].Attrs = Map{}
			}
		}
	}
	b.normalize()
}

// MergeAttrs merges m into every run of the range, per-key last write wins.
func (b *Buffer) MergeAttrs(rng Range, m Map) {
	rng = rng.Clamp(len(b.runes))
	if rng.Empty() || len(m) == 0 {
		return
	}
	b.split(rng.Start)
	b.split(rng.End)
	for i := range b.spans {
		if b.spans[i].Start >= rng.Start && b.spans[i].End <= rng.End {
			b.spans[i].Attrs = b.spans[i].Attrs.Clone().Merge(m)
		}
	}
	b.normalize()
}

// ClearAttrs deletes the listed keys from every run of the range. With no
// keys given all attributes in the range are cleared.
func (b *Buffer) ClearAttrs(rng Range, keys ...Key) {
	rng = rng.Clamp(len(b.runes))
	if rng.Empty() {
		return
	}
	b.split(rng.Start)
	b.split(rng.End)
	for i := range b.spans {
		if b.spans[i].Start < rng.Start || b.spans[i].End > rng.End {
			continue
		}
		if len(keys) == 0 {
			b.spans[i].Attrs = Map{}
			continue
		}
		m := b.spans[i].Attrs.Clone()
		for _, k := range keys {
			delete(m, k)
		}
		b.spans[i].Attrs = m
	}
	b.normalize()
}

// InsertText inserts text at rune position at. A nil map inherits attributes
// effective at the insertion point (or the preceding rune when inserting at
// the very end), a non-nil map is applied verbatim.
func (b *Buffer) InsertText(at int, text string, m Map) {
	b.InsertRunes(at, []rune(text), m)
}

// InsertRunes is InsertText for pre-split runes.
func (b *Buffer) InsertRunes(at int, rs []rune, m Map) {
	if len(rs) == 0 {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(b.runes) {
		at = len(b.runes)
	}
	if m == nil {
		m = b.inheritAt(at)
	}
	b.split(at)
	b.runes = slices.Insert(b.runes, at, rs...)
	n := len(rs)
	idx := 0
	for idx < len(b.spans) && b.spans[idx].End <= at {
		idx++
	}
	for i := idx; i < len(b.spans); i++ {
		b.spans[i].Start += n
		b.spans[i].End += n
	}
	b.spans = slices.Insert(b.spans, idx, Run{Start: at, End: at + n, Attrs: m.Clone()})
	b.normalize()
}

// DeleteRange removes the runes of the range.
func (b *Buffer) DeleteRange(rng Range) {
	rng = rng.Clamp(len(b.runes))
	if rng.Empty() {
		return
	}
	b.split(rng.Start)
	b.split(rng.End)
	b.runes = slices.Delete(b.runes, rng.Start, rng.End)
	n := rng.Len()
	out := b.spans[:0]
	for _, sp := range b.spans {
		switch {
		case sp.End <= rng.Start:
			out = append(out, sp)
		case sp.Start >= rng.End:
			sp.Start -= n
			sp.End -= n
			out = append(out, sp)
		}
	}
	b.spans = out
	b.normalize()
}

// ReplaceRange splices replacement text over the range. The replacement
// inherits the attributes of the first rune of the replaced range (or of the
// preceding rune for an empty range). Returns the length delta in runes.
func (b *Buffer) ReplaceRange(rng Range, text string) int {
	rng = rng.Clamp(len(b.runes))
	m := b.inheritAt(rng.Start)
	b.DeleteRange(rng)
	rs := []rune(text)
	b.InsertRunes(rng.Start, rs, m)
	return len(rs) - rng.Len()
}

// inheritAt picks the attribute map new content at position at should carry.
func (b *Buffer) inheritAt(at int) Map {
	if m := b.AttrsAt(at); m != nil {
		return m
	}
	if m := b.AttrsAt(at - 1); m != nil {
		return m
	}
	return Map{}
}

// split guarantees a span boundary at rune position at.
func (b *Buffer) split(at int) {
	if at <= 0 || at >= len(b.runes) {
		return
	}
	for i, sp := range b.spans {
		if at <= sp.Start {
			return
		}
		if at < sp.End {
			left := Run{Start: sp.Start, End: at, Attrs: sp.Attrs}
			b.spans[i].Start = at
			b.spans = slices.Insert(b.spans, i, left)
			return
		}
	}
}

// normalize drops empty spans and coalesces adjacent spans with equal maps.
func (b *Buffer) normalize() {
	out := b.spans[:0]
	for _, sp := range b.spans {
		if sp.Start >= sp.End {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == sp.Start && out[n-1].Attrs.Equal(sp.Attrs) {
			out[n-1].End = sp.End
			continue
		}
		out = append(out, sp)
	}
	b.spans = out
}

// DebugString renders text and runs in a compact single-line form, mostly
// for test failure messages.
func (b *Buffer) DebugString() string {
	var sb strings.Builder
	sb.WriteString(strconv.Quote(b.String()))
	for _, r := range b.spans {
		fmt.Fprintf(&sb, " [%d,%d)", r.Start, r.End)
		for _, k := range r.Attrs.Keys() {
			sb.WriteByte(' ')
			sb.WriteString(string(k))
		}
	}
	return sb.String()
}
