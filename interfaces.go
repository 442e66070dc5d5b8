package vcmp

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Block is a deferred content-producing block captured when an element
// (or component) is declared in a template. It runs exactly once, via
// the view context, the first time the instance's content is needed.
type Block func(ctx context.Context) templ.Component

// ViewContext is the block-capture capability supplied by the host
// rendering stack: it executes a component on behalf of a caller and
// returns the produced markup as a string.
//
// The default TemplView renders directly; hosts with their own capture
// semantics (buffering, instrumentation) inject their own.
type ViewContext interface {
	Capture(ctx context.Context, c templ.Component) (string, error)
}

// TemplView is the default ViewContext: it renders a templ component
// into a string buffer.
type TemplView struct{}

// Capture renders c and returns the produced markup.
func (TemplView) Capture(ctx context.Context, c templ.Component) (string, error) {
	if c == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Validator is the optional validation capability. When present on an
// instance it runs immediately after the instance's content is first
// produced; a returned error propagates out of the render path.
//
// A nil Validator disables validation entirely.
type Validator interface {
	Validate(b *Base) error
}

// ModelNamer resolves the display name the validation capability
// reports failures under. Base implements it by delegating to its
// schema's nearest named ancestor.
type ModelNamer interface {
	ModelName() string
}
