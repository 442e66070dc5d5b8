package vcmp

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Base is the runtime object behind a component or element instance.
// User components embed *Base to gain the attribute and element surface;
// elements are plain *Base values constructed through their parent.
//
//	type Card struct {
//	    *vcmp.Base
//	}
//
//	func NewCard(input map[string]any) *Card {
//	    return &Card{Base: cardSchema.New(input)}
//	}
//
// A Base is request-scoped: it is built, rendered once, and discarded
// within a single call stack. It is not safe for concurrent use, and
// its render path must not be re-entered from its own deferred block.
type Base struct {
	schema    *Schema
	attrs     *Attrs
	parent    *Base // non-owning back-reference
	view      ViewContext
	validator Validator
	block     Block

	content  string
	produced bool

	single map[string]*Base
	multi  map[string][]*Base
}

// BaseOption configures instance construction.
type BaseOption func(*Base)

// WithView injects the block-capture capability. Defaults to TemplView.
func WithView(view ViewContext) BaseOption {
	return func(b *Base) { b.view = view }
}

// WithValidator injects the optional validation capability. Elements
// inherit their parent's validator.
func WithValidator(v Validator) BaseOption {
	return func(b *Base) { b.validator = v }
}

// WithParent sets the non-owning parent back-reference. Set
// automatically for elements constructed via NewElement.
func WithParent(parent *Base) BaseOption {
	return func(b *Base) { b.parent = parent }
}

// WithBlock sets the deferred content block.
func WithBlock(block Block) BaseOption {
	return func(b *Base) { b.block = block }
}

// New constructs an instance of the schema. Input is filtered and
// resolved per NewAttrs: unknown keys are discarded, default groups
// backfill, and unset values are dropped.
func (s *Schema) New(input map[string]any, opts ...BaseOption) *Base {
	b := &Base{
		schema: s,
		attrs:  s.NewAttrs(input),
		single: make(map[string]*Base),
		multi:  make(map[string][]*Base),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Schema returns the schema this instance was constructed from.
func (b *Base) Schema() *Schema {
	return b.schema
}

// Parent returns the parent instance, or nil at the root. The reference
// is a back-pointer only; ownership runs strictly top-down.
func (b *Base) Parent() *Base {
	return b.parent
}

// ModelName resolves the display name for the validation capability.
func (b *Base) ModelName() string {
	return b.schema.ModelName()
}

// Attr returns the current value of an attribute, or nil when unset.
func (b *Base) Attr(name string) any {
	return b.attrs.Get(name)
}

// Attrs returns the instance attribute state.
func (b *Base) Attrs() *Attrs {
	return b.attrs
}

// TagAttrs returns the memoized tag attribute container built from the
// schema's tag, data, and aria subsets.
func (b *Base) TagAttrs() *TagAttrs {
	return b.attrs.TagAttrs()
}

// Classname returns the space-joined class entry of the tag attributes.
func (b *Base) Classname() string {
	return b.attrs.Classname()
}

// Data returns the nested data attribute group.
func (b *Base) Data() *TagAttrs {
	return b.attrs.Data()
}

// Aria returns the nested aria attribute group.
func (b *Base) Aria() *TagAttrs {
	return b.attrs.Aria()
}

// NewElement constructs a child element and stores it: a singular
// element's slot is replaced, a Multiple element appends to its
// collection.
//
// The element's registered default attributes are merged under the
// caller-supplied attrs (caller wins). The child inherits the view
// context and validator, and holds a non-owning reference back to b.
func (b *Base) NewElement(name string, attrs map[string]any, block Block) (*Base, error) {
	def := b.schema.element(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}

	input := attrs
	if len(def.defaults) > 0 {
		input = make(map[string]any, len(def.defaults)+len(attrs))
		for k, v := range def.defaults {
			input[k] = v
		}
		for k, v := range attrs {
			input[k] = v
		}
	}

	child := def.schema.New(input,
		WithParent(b),
		WithView(b.view),
		WithValidator(b.validator),
		WithBlock(block),
	)

	if def.multiple {
		b.multi[name] = append(b.multi[name], child)
	} else {
		b.single[name] = child
	}
	return child, nil
}

// Element returns the stored instance of a singular element, or nil if
// none has been constructed.
//
// If this instance's own deferred block has not run yet, Element runs
// it (memoized) first: elements are typically declared inside the
// parent's block, so reading one must populate them before returning.
func (b *Base) Element(ctx context.Context, name string) (*Base, error) {
	def := b.schema.element(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	if def.multiple {
		return nil, fmt.Errorf("%w: element %q is multiple, use Elements", ErrElementCardinality, name)
	}
	if err := b.ensureProduced(ctx); err != nil {
		return nil, err
	}
	return b.single[name], nil
}

// Elements returns the ordered collection of a Multiple element,
// forcing this instance's own deferred block first, like Element.
func (b *Base) Elements(ctx context.Context, name string) ([]*Base, error) {
	def := b.schema.element(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	if !def.multiple {
		return nil, fmt.Errorf("%w: element %q is singular, use Element", ErrElementCardinality, name)
	}
	if err := b.ensureProduced(ctx); err != nil {
		return nil, err
	}
	return b.multi[name], nil
}

// Yield produces the instance's content: the deferred block executes
// exactly once against the view context and the result is memoized.
// Subsequent calls return the memoized content without re-running the
// block.
//
// When a validator is present, it runs immediately after content is
// first produced and before Yield returns, so validation failures
// surface at first render rather than at construction. The validator
// runs at most once; its error is returned alongside the (memoized)
// content.
func (b *Base) Yield(ctx context.Context) (string, error) {
	if b.produced {
		return b.content, nil
	}
	b.produced = true

	if b.block != nil {
		view := b.view
		if view == nil {
			view = TemplView{}
		}
		content, err := view.Capture(ctx, b.block(ctx))
		if err != nil {
			return "", err
		}
		b.content = content
	}

	if b.validator != nil {
		if err := b.validator.Validate(b); err != nil {
			return b.content, err
		}
	}
	return b.content, nil
}

// ensureProduced runs the deferred block if it has not run yet.
func (b *Base) ensureProduced(ctx context.Context) error {
	if b.produced || b.block == nil {
		return nil
	}
	_, err := b.Yield(ctx)
	return err
}

// Component adapts the instance for use inside templ templates: the
// returned component yields (memoized) and writes the produced HTML.
func (b *Base) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content, err := b.Yield(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, content)
		return err
	})
}
