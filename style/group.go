package style

import (
	"regexp"

	"stext/attr"
)

// Group is an ordered collection of styles applied as one. Later members win
// on overlapping attribute keys.
type Group struct {
	name    string
	members []*Style
}

// NewGroup creates a group over the given styles, applied in order.
func NewGroup(name string, members ...*Style) *Group {
	return &Group{name: name, members: members}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Append adds styles at the end of the application order.
func (g *Group) Append(members ...*Style) *Group {
	g.members = append(g.members, members...)
	return g
}

// SetString builds a fresh buffer and applies all members in order.
func (g *Group) SetString(text string) *attr.Buffer {
	buf := attr.NewBuffer(text)
	return g.Set(buf, attr.All)
}

// Set applies all members over the range in order.
func (g *Group) Set(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	for _, s := range g.members {
		s.Set(buf, rng)
	}
	return buf
}

// Add applies all members over the range in order.
func (g *Group) Add(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	for _, s := range g.members {
		s.Add(buf, rng)
	}
	return buf
}

// Remove removes all members' keys from the range, in order.
func (g *Group) Remove(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	for _, s := range g.members {
		s.Remove(buf, rng)
	}
	return buf
}

// Regex binds a style to a regular expression: application styles every
// match of the pattern inside the addressed range, leaving the rest alone.
type Regex struct {
	re    *regexp.Regexp
	style *Style
}

// NewRegex creates a regex-scoped application of st.
func NewRegex(re *regexp.Regexp, st *Style) *Regex {
	return &Regex{re: re, style: st}
}

// SetString builds a fresh buffer and styles every pattern match in it.
func (r *Regex) SetString(text string) *attr.Buffer {
	buf := attr.NewBuffer(text)
	return r.Set(buf, attr.All)
}

// Set styles every pattern match inside the range.
func (r *Regex) Set(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	return r.each(buf, rng, r.style.Set)
}

// Add styles every pattern match inside the range.
func (r *Regex) Add(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	return r.each(buf, rng, r.style.Add)
}

// Remove strips the style from every pattern match inside the range.
func (r *Regex) Remove(buf *attr.Buffer, rng attr.Range) *attr.Buffer {
	return r.each(buf, rng, r.style.Remove)
}

func (r *Regex) each(buf *attr.Buffer, rng attr.Range, apply func(*attr.Buffer, attr.Range) *attr.Buffer) *attr.Buffer {
	rng = rng.Clamp(buf.Len())
	text := buf.Slice(rng)
	// regexp yields byte offsets, the buffer works in runes
	matches := r.re.FindAllStringIndex(text, -1)
	// right-to-left so that length-changing transforms in the applied style
	// cannot shift pending match offsets
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		start := rng.Start + len([]rune(text[:m[0]]))
		end := rng.Start + len([]rune(text[:m[1]]))
		apply(buf, attr.Range{Start: start, End: end})
	}
	return buf
}
