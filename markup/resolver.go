package markup

import (
	"context"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"stext/attr"
	"stext/images"
)

// node is one tag occurrence: its name, the XML attributes in document
// order, and the half-open rune range it covers in the stripped output text.
// Nodes are ephemeral - they live for a single resolution pass.
type node struct {
	tag   string
	attrs []Attr
	start int
	end   int
}

// Resolver turns tagged strings into styled-text buffers. It is stateless
// across calls - each Resolve pass owns its buffer exclusively, so a single
// Resolver may serve concurrent passes as long as the registered styles are
// not mutated meanwhile.
type Resolver struct {
	styles *Styles
	hooks  Hooks
	images *images.Resolver
	log    *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger supplies the logger, named "markup".
func WithLogger(log *zap.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log.Named("markup") }
}

// WithHooks replaces the default hooks implementation.
func WithHooks(h Hooks) ResolverOption {
	return func(r *Resolver) { r.hooks = h }
}

// WithImages replaces the image resolver used by the default hooks.
func WithImages(ir *images.Resolver) ResolverOption {
	return func(r *Resolver) { r.images = ir }
}

// NewResolver creates a resolver over the given style registry.
func NewResolver(styles *Styles, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		styles: styles,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.images == nil {
		r.images = images.NewResolver(images.WithLogger(r.log))
	}
	if r.hooks == nil {
		r.hooks = &StandardHooks{Log: r.log, Images: r.images, Source: styles.ImageSource()}
	}
	return r
}

// Resolve parses tag markup in input and produces the styled buffer.
//
// The walk is outer to inner in document order: a tag's style covers its
// whole range, inner tag styles are applied on top so the innermost wins for
// overlapping attribute keys while disjoint keys accumulate. When a tag's
// transforms change the character count only the ranges following that tag
// are shifted; ranges of tags nested inside it are not rescaled, so
// length-changing transforms belong on leaf tags. There are no fatal
// errors - the returned buffer is always usable; the error aggregates
// per-node hook failures (already logged) and context cancellation.
func (r *Resolver) Resolve(ctx context.Context, input string) (*attr.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return attr.NewBuffer(input), err
	}

	text, nodes, parsed := r.parse(input)

	var buf *attr.Buffer
	if parsed {
		buf = attr.NewBuffer(text)
	} else {
		// whole input stays plain text carrying only the base style
		buf = attr.NewBuffer(input)
		nodes = nil
	}

	if base := r.styles.Base(); base != nil {
		base.Add(buf, attr.All)
	}

	var errs error
	for i, n := range nodes {
		if err := ctx.Err(); err != nil {
			return buf, multierr.Append(errs, err)
		}

		rng := attr.Range{Start: n.start, End: n.end}
		before := buf.Len()

		if st, ok := r.styles.Lookup(n.tag); ok {
			st.Add(buf, rng)
		} else if err := r.hooks.UnknownTag(ctx, buf, n.tag, rng, n.attrs); err != nil {
			r.log.Warn("Unknown-tag hook failed, continuing", zap.String("tag", n.tag), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		// transforms may change character count - all pending ranges past
		// this node move by the net delta, ranges nested inside it are
		// deliberately not rescaled
		if delta := buf.Len() - before; delta != 0 {
			shift(nodes[i+1:], n.end, delta)
			rng.End += delta
		}

		if len(n.attrs) == 0 {
			continue
		}
		before = buf.Len()
		if err := r.hooks.DynamicAttributes(ctx, buf, n.tag, rng, n.attrs); err != nil {
			r.log.Warn("Dynamic-attributes hook failed, continuing", zap.String("tag", n.tag), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		// image insertion happens at the node start - everything from that
		// point on, including the node's own children, moves right
		if delta := buf.Len() - before; delta != 0 {
			shift(nodes[i+1:], rng.Start, delta)
		}
	}
	return buf, errs
}

// parse reads the (root-wrapped) input permissively and flattens it into
// stripped text plus tag nodes in document pre-order. Standard XML escapes
// and HTML named entities are decoded; an unterminated opening tag extends
// to end of input and stray closing tags are dropped. When the input cannot
// be parsed at all the caller falls back to plain text.
func (r *Resolver) parse(input string) (string, []*node, bool) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Entity:        htmlNamedEntities(),
		ValidateInput: false,
		Permissive:    true,
	}
	if err := doc.ReadFromString("<stext>" + input + "</stext>"); err != nil {
		r.log.Debug("Unable to parse markup, treating input as plain text", zap.Error(err))
		return "", nil, false
	}
	root := doc.Root()
	if root == nil {
		return "", nil, false
	}

	var (
		text  []rune
		nodes []*node
	)
	flatten(root, &text, &nodes)
	return string(text), nodes, true
}

// flatten walks element children accumulating character data and recording
// every element's range in the stripped text. Parents precede children in
// the output, siblings keep document order.
func flatten(el *etree.Element, text *[]rune, nodes *[]*node) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			*text = append(*text, []rune(t.Data)...)
		case *etree.Element:
			n := &node{tag: t.Tag, start: len(*text)}
			for _, a := range t.Attr {
				n.attrs = append(n.attrs, Attr{Name: a.Key, Value: a.Value})
			}
			*nodes = append(*nodes, n)
			flatten(t, text, nodes)
			n.end = len(*text)
		}
	}
}

// shift moves every pending range boundary at or past position at by delta.
func shift(nodes []*node, at, delta int) {
	for _, n := range nodes {
		if n.start >= at {
			n.start += delta
		}
		if n.end >= at {
			n.end += delta
		}
	}
}
