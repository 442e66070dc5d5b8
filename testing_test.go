package vcmp

import (
	"context"
	"errors"
	"testing"
)

func TestHTMLBlockCountsInvocations(t *testing.T) {
	ctx := context.Background()
	var calls int
	block := HTMLBlock("<i>x</i>", &calls)

	html, err := RenderToString(ctx, block(ctx))
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if html != "<i>x</i>" {
		t.Errorf("html = %q, want <i>x</i>", html)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTestViewPropagatesConfiguredError(t *testing.T) {
	boom := errors.New("boom")
	view := &TestView{Err: boom}

	card := NewSchema("Card").New(nil,
		WithView(view),
		WithBlock(HTMLBlock("<b>hi</b>", nil)),
	)

	if _, err := card.Yield(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Yield() error = %v, want configured capture error", err)
	}
	if view.Captures != 1 {
		t.Errorf("captures = %d, want 1", view.Captures)
	}
}
