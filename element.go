package vcmp

import (
	"fmt"
	"strings"
)

// elementDef describes a declared element: its accessor names,
// multiplicity, backing schema, and per-element default attributes.
type elementDef struct {
	name     string
	plural   string
	multiple bool
	base     *Schema // Component option, nil for a fresh element schema
	schema   *Schema
	defaults map[string]any
	define   func(*Schema)
}

// ElementOption configures an element declaration.
type ElementOption func(*elementDef)

// Multiple makes the element repeatable: constructed instances
// accumulate into an ordered collection read through the pluralized
// accessor (Elements / the generated plural method).
func Multiple() ElementOption {
	return func(d *elementDef) { d.multiple = true }
}

// Component uses an existing component schema as the element's base.
// The element receives a derived copy (the parent schema is never
// mutated), and the element's model name resolves through the nearest
// named ancestor of that schema.
func Component(schema *Schema) ElementOption {
	return func(d *elementDef) { d.base = schema }
}

// ElementDefaults registers per-element default attribute overrides.
// They are merged under caller-supplied attributes at construction:
// the caller always wins.
func ElementDefaults(defaults map[string]any) ElementOption {
	return func(d *elementDef) { d.defaults = defaults }
}

// Define declares the element's own attributes and nested elements.
// The callback runs once, at declaration time, against the element's
// schema:
//
//	s.Element("header", vcmp.Define(func(h *vcmp.Schema) {
//	    h.Attr("class", vcmp.Tag())
//	}))
func Define(fn func(*Schema)) ElementOption {
	return func(d *elementDef) { d.define = fn }
}

// Element declares a nested element and returns the schema for chaining.
//
// The accessor name — and, for Multiple elements, its pluralized form —
// must not collide with any declared attribute, element, or reserved
// Base method. A collision panics here, at declaration time, before any
// instance is constructed.
func (s *Schema) Element(name string, opts ...ElementOption) *Schema {
	def := &elementDef{name: name, plural: pluralize(name)}
	for _, opt := range opts {
		opt(def)
	}

	s.reserveElementName(name, def)
	if def.multiple {
		s.reserveElementName(def.plural, def)
	}

	if def.base != nil {
		def.schema = def.base.Extend()
	} else {
		def.schema = NewSchema("")
		def.schema.parent = elementBaseSchema
	}
	if def.define != nil {
		def.define(def.schema)
	}

	s.elements = append(s.elements, def)
	s.elemIdx[name] = def
	return s
}

// elementBaseSchema is the generic base for elements declared without a
// Component option. It is anonymous: model-name resolution skips it and
// falls through to the library fallback.
var elementBaseSchema = NewSchema("")

// reserveElementName claims an accessor name for an element, panicking
// on any collision.
func (s *Schema) reserveElementName(name string, def *elementDef) {
	key := accessorKey(name)
	if kind, exists := s.taken[key]; exists {
		panic(fmt.Sprintf("vcmp: element %q collides with %s accessor %q", def.name, kind, name))
	}
	if reservedAccessors[key] {
		panic(fmt.Sprintf("vcmp: element %q collides with a reserved accessor name", def.name))
	}
	s.taken[key] = "element"
}

// pluralize derives the plural accessor name for a Multiple element.
// The rules are deliberately small: trailing s/x/z/ch/sh take "es",
// consonant+y becomes "ies", everything else takes "s".
func pluralize(name string) string {
	switch {
	case strings.HasSuffix(name, "s"),
		strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "z"),
		strings.HasSuffix(name, "ch"),
		strings.HasSuffix(name, "sh"):
		return name + "es"
	case strings.HasSuffix(name, "y") && len(name) > 1 && !isVowel(name[len(name)-2]):
		return name[:len(name)-1] + "ies"
	default:
		return name + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
