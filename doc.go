// Package vcmp provides declarative attribute and element management for
// server-rendered view components built with templ.
//
// vcmp augments plain Go view objects with three cooperating pieces:
// an attribute schema with defaults and grouped default bundles, nested
// lazily-constructed "elements" (child sub-objects with deferred content),
// and an ordered tag-attribute container that serializes directly into
// HTML markup.
//
// # Schemas
//
// A schema is declared once, at package initialization, and describes the
// attributes and elements a component carries:
//
//	var cardSchema = vcmp.NewSchema("Card").
//	    Attr("class", vcmp.Tag()).
//	    Attr("theme", vcmp.Default("notice")).
//	    Attr("controller", vcmp.Data()).
//	    Element("header").
//	    Element("item", vcmp.Multiple())
//
// Schemas are immutable once a component is in use. A child component
// derives its schema with Extend, which computes the merged schema once
// and never mutates the parent:
//
//	var fancyCardSchema = cardSchema.Extend().
//	    Attr("theme", vcmp.Default("fancy"))
//
// # Instances
//
// schema.New builds the runtime object. Constructor input is filtered
// against the schema: unknown keys are discarded, default groups backfill
// unset attributes, and nil or empty values are dropped:
//
//	card := cardSchema.New(map[string]any{"class": "card", "icon": nil})
//
// Components embed *vcmp.Base to expose the attribute and element surface
// directly. The vcmp CLI generates typed accessor wrappers so templates
// read card.Theme() instead of card.Attr("theme").
//
// # Elements
//
// Elements are child instances created on first use and memoized. Each
// element captures a non-owning reference to its parent, a deferred
// content block, and the view context. Content is produced exactly once:
//
//	card.NewElement("header", map[string]any{"class": "hd"}, func(ctx context.Context) templ.Component {
//	    return templ.Raw("<h2>Title</h2>")
//	})
//
// Reading an element forces the parent's own deferred block to run first,
// so elements declared inside the parent's block are always populated.
//
// # Tag attributes
//
// Attrs.TagAttrs flattens the declared tag, data and aria attribute
// subsets into an ordered container whose String method emits an HTML
// attribute string. Keys are dash-normalized, nil and empty values are
// dropped, and nested data/aria groups flatten to data-key="value" form.
//
// # Validation
//
// Validation is an optional injected capability. When a Validator is
// present on an instance, it runs immediately after the instance's
// content is first produced, so failures surface at first render rather
// than at construction.
//
// # Errors
//
// Misconfiguration panics at declaration time: duplicate or colliding
// accessor names and malformed default-group bundles are programmer
// errors and never reach request handling. Everything else is silently
// normalized (empty values dropped, unknown keys discarded) or returned
// as an error from the render path.
package vcmp
