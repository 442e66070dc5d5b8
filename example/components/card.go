package components

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/vcmp"
)

// cardSchema declares a singular header element and a repeatable item
// element with per-element default attributes.
var cardSchema = vcmp.NewSchema("Card").
	Attr("class", vcmp.Tag(), vcmp.Default("card")).
	Attr("controller", vcmp.Data(), vcmp.Default("card")).
	Element("header", vcmp.Define(func(h *vcmp.Schema) {
		h.Attr("class", vcmp.Tag(), vcmp.Default("card__header"))
	})).
	Element("item", vcmp.Multiple(),
		vcmp.ElementDefaults(map[string]any{"class": "card__item"}),
		vcmp.Define(func(i *vcmp.Schema) {
			i.Attr("class", vcmp.Tag())
			i.Attr("index", vcmp.Data())
		}))

// Card is a container component with a header and repeated items.
type Card struct {
	*vcmp.Base
}

// NewCard creates a card whose elements are populated lazily, inside
// the deferred block, the way a template would fill its slots.
func NewCard(attrs map[string]any, items []string) *Card {
	c := &Card{}
	c.Base = cardSchema.New(attrs, vcmp.WithBlock(func(ctx context.Context) templ.Component {
		c.NewElement("header", nil, func(ctx context.Context) templ.Component {
			return templ.Raw("<h2>Items</h2>")
		})
		for i, item := range items {
			item := item
			index := i
			c.NewElement("item", map[string]any{"index": fmt.Sprint(index)}, func(ctx context.Context) templ.Component {
				return templ.Raw("<span>" + item + "</span>")
			})
		}
		return templ.Raw("")
	}))
	return c
}

// Render writes the card as HTML, composing each element's tag
// attributes and memoized content.
func (c *Card) Render(ctx context.Context) (string, error) {
	header, err := c.Element(ctx, "header")
	if err != nil {
		return "", err
	}
	items, err := c.Elements(ctx, "item")
	if err != nil {
		return "", err
	}

	out := "<div " + c.TagAttrs().String() + ">"
	if header != nil {
		content, err := header.Yield(ctx)
		if err != nil {
			return "", err
		}
		out += "<div " + header.TagAttrs().String() + ">" + content + "</div>"
	}
	for _, item := range items {
		content, err := item.Yield(ctx)
		if err != nil {
			return "", err
		}
		out += "<div " + item.TagAttrs().String() + ">" + content + "</div>"
	}
	out += "</div>"
	return out, nil
}
