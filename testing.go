package vcmp

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// TestView is a ViewContext for tests: it renders like TemplView while
// counting captures, so tests can assert that deferred blocks run
// exactly once.
//
//	view := &vcmp.TestView{}
//	card := cardSchema.New(nil, vcmp.WithView(view), vcmp.WithBlock(block))
//	card.Yield(ctx)
//	card.Yield(ctx)
//	// view.Captures == 1
type TestView struct {
	Captures int

	// Err, when set, is returned from every capture.
	Err error
}

// Capture renders c into a string, counting the call.
func (v *TestView) Capture(ctx context.Context, c templ.Component) (string, error) {
	v.Captures++
	if v.Err != nil {
		return "", v.Err
	}
	return TemplView{}.Capture(ctx, c)
}

// RecordingValidator is a Validator for tests: it counts validation
// passes and returns a configured error.
type RecordingValidator struct {
	Calls int
	Err   error

	// LastModelName records the model name of the last validated instance.
	LastModelName string
}

// Validate records the call and returns the configured error.
func (v *RecordingValidator) Validate(b *Base) error {
	v.Calls++
	v.LastModelName = b.ModelName()
	return v.Err
}

// HTMLBlock returns a Block producing fixed HTML, counting invocations
// through calls when non-nil. Useful for asserting at-most-once block
// execution:
//
//	var calls int
//	block := vcmp.HTMLBlock("<b>hi</b>", &calls)
func HTMLBlock(html string, calls *int) Block {
	return func(ctx context.Context) templ.Component {
		if calls != nil {
			*calls++
		}
		return templ.Raw(html)
	}
}

// RenderToString renders a templ component to a string. Test shorthand
// for asserting on markup produced by Component().
func RenderToString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
