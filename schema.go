package vcmp

import (
	"fmt"
	"strings"
)

// attrKind places an attribute in one of the emitted tag-attribute
// subsets. State-only attributes never reach the tag-attribute container.
type attrKind int

const (
	kindState attrKind = iota
	kindTag
	kindData
	kindAria
)

// attrDef is a single attribute declaration: name, optional default and
// subset placement.
type attrDef struct {
	name       string
	kind       attrKind
	def        any
	hasDefault bool
}

// defaultGroup maps a discriminator attribute to bundles of default
// values keyed by the discriminator's (stringified) value.
type defaultGroup struct {
	attr    string
	bundles map[string]map[string]any
}

// Schema describes the attributes, default groups, and elements of a
// component. Schemas are built at package initialization and must not be
// mutated once a component is in active use.
//
// A Schema is the explicit, value-level replacement for class-level
// declarations: a derived schema is computed once via Extend and the
// parent is never mutated by its children.
type Schema struct {
	name     string
	parent   *Schema
	attrs    []*attrDef
	attrIdx  map[string]*attrDef
	elements []*elementDef
	elemIdx  map[string]*elementDef
	groups   []*defaultGroup
	taken    map[string]string // accessor key -> declaration kind
}

// reservedAccessors are Base method names that generated accessors may
// never shadow. Keys are normalized via accessorKey.
var reservedAccessors = map[string]bool{
	"attr":       true,
	"attrs":      true,
	"tagattrs":   true,
	"classname":  true,
	"data":       true,
	"aria":       true,
	"element":    true,
	"elements":   true,
	"newelement": true,
	"yield":      true,
	"component":  true,
	"schema":     true,
	"parent":     true,
	"modelname":  true,
	"statetoken": true,
}

// NewSchema creates an empty schema. The name is the model name reported
// to the validation capability; use "" for anonymous element schemas.
func NewSchema(name string) *Schema {
	return &Schema{
		name:    name,
		attrIdx: make(map[string]*attrDef),
		elemIdx: make(map[string]*elementDef),
		taken:   make(map[string]string),
	}
}

// AttrOption configures an attribute declaration.
type AttrOption func(*attrDef)

// Default sets the attribute's default value, used when the constructor
// input leaves the attribute unset.
func Default(v any) AttrOption {
	return func(d *attrDef) {
		d.def = v
		d.hasDefault = true
	}
}

// Tag places the attribute in the plain tag-attribute subset, emitted
// at the top level of TagAttrs.
func Tag() AttrOption {
	return func(d *attrDef) { d.kind = kindTag }
}

// Data places the attribute in the data subset, emitted under the
// nested data group (data-name="value").
func Data() AttrOption {
	return func(d *attrDef) { d.kind = kindData }
}

// Aria places the attribute in the aria subset, emitted under the
// nested aria group (aria-name="value").
func Aria() AttrOption {
	return func(d *attrDef) { d.kind = kindAria }
}

// Attr registers an attribute and returns the schema for chaining.
//
// Re-declaring an attribute that already exists (typically on a schema
// derived with Extend) replaces its definition in place: the override
// keeps the original declaration position and never touches the parent
// schema.
//
// Attr panics at declaration time when the name collides with an
// element accessor or a reserved Base method name. Configuration errors
// surface when the schema is defined, never at request time.
func (s *Schema) Attr(name string, opts ...AttrOption) *Schema {
	key := accessorKey(name)
	if kind, exists := s.taken[key]; exists && kind != "attribute" {
		panic(fmt.Sprintf("vcmp: attribute %q collides with %s accessor", name, kind))
	}
	if reservedAccessors[key] {
		panic(fmt.Sprintf("vcmp: attribute %q collides with a reserved accessor name", name))
	}

	def := &attrDef{name: name}
	for _, opt := range opts {
		opt(def)
	}

	if prev, ok := s.attrIdx[name]; ok {
		// Override: replace in place, keeping declaration order.
		for i, d := range s.attrs {
			if d == prev {
				s.attrs[i] = def
				break
			}
		}
	} else {
		s.attrs = append(s.attrs, def)
	}
	s.attrIdx[name] = def
	s.taken[key] = "attribute"
	return s
}

// DefaultGroup registers a table of default-value bundles selected by
// the value of the discriminator attribute. During construction the
// discriminator resolves to the input value (else its schema default),
// and the chosen bundle backfills only attributes the caller left unset:
//
//	s.Attr("theme", vcmp.Default("notice")).
//	    Attr("icon").
//	    Attr("color").
//	    DefaultGroup("theme", map[any]any{
//	        "notice": map[string]any{"icon": "message", "color": "blue"},
//	        "alert":  map[string]any{"icon": "warning", "color": "red"},
//	    })
//
// DefaultGroup panics immediately when a bundle value is not a
// map[string]any; a malformed bundle is a fatal configuration error.
func (s *Schema) DefaultGroup(attr string, bundles map[any]any) *Schema {
	g := &defaultGroup{
		attr:    attr,
		bundles: make(map[string]map[string]any, len(bundles)),
	}
	for value, bundle := range bundles {
		defaults, ok := bundle.(map[string]any)
		if !ok {
			panic(fmt.Sprintf("vcmp: default group %q: bundle for %v must be a map[string]any, got %T", attr, value, bundle))
		}
		g.bundles[groupKey(value)] = defaults
	}
	s.groups = append(s.groups, g)
	return s
}

// Extend derives a new schema from s: the child starts as a one-time
// merge of the parent's attributes, default groups, and elements, and
// further declarations on the child never mutate the parent.
//
// An optional name sets the child's model name; without one the child
// is anonymous and resolves its model name through the parent chain.
func (s *Schema) Extend(name ...string) *Schema {
	childName := ""
	if len(name) > 0 {
		childName = name[0]
	}

	child := NewSchema(childName)
	child.parent = s
	child.attrs = append([]*attrDef(nil), s.attrs...)
	child.elements = append([]*elementDef(nil), s.elements...)
	child.groups = append([]*defaultGroup(nil), s.groups...)
	for k, v := range s.attrIdx {
		child.attrIdx[k] = v
	}
	for k, v := range s.elemIdx {
		child.elemIdx[k] = v
	}
	for k, v := range s.taken {
		child.taken[k] = v
	}
	return child
}

// ModelName resolves the display name reported to the validation
// capability: the schema's own name, else the nearest named ancestor,
// else the library fallback "Element". Anonymous element schemas derived
// from a named component schema report the component's name.
func (s *Schema) ModelName() string {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name != "" {
			return cur.name
		}
	}
	return "Element"
}

// Name returns the schema's own name ("" for anonymous schemas).
func (s *Schema) Name() string {
	return s.name
}

// element returns the element definition for name, or nil.
func (s *Schema) element(name string) *elementDef {
	return s.elemIdx[name]
}

// accessorKey normalizes a declared name to the identity used for
// collision detection: case and separators are ignored so that e.g.
// "tag_attrs" collides with the TagAttrs accessor.
func accessorKey(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	return key
}

// groupKey normalizes a default-group discriminator value to a
// comparable key. Symbol-ish and string values compare equal.
func groupKey(value any) string {
	return fmt.Sprint(value)
}
