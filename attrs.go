package vcmp

// Attrs is the per-instance attribute state of a component: the subset
// of schema attributes that resolved to a set (non-nil, non-empty)
// value at construction.
//
// Attrs is owned by a single instance for the duration of one render
// and is not safe for concurrent use.
type Attrs struct {
	schema *Schema
	values map[string]any
	tag    *TagAttrs // built on first TagAttrs call
}

// NewAttrs initializes instance attribute state from constructor input.
//
// Initialization proceeds in three steps:
//
//  1. Input keys not declared in the schema are silently discarded.
//     Filtering happens before default-group expansion, so unknown keys
//     can never select or contribute bundle values.
//  2. Each default group resolves its discriminator — input value if
//     present, else the discriminator's schema default — normalized to
//     a comparable key, and the chosen bundle backfills attributes the
//     input left unset.
//  3. Each schema attribute takes the input value if present, else its
//     default; the result is kept only if set (non-nil, non-empty).
//     Booleans are always set: true is retained stringified, false is
//     retained as a value distinct from absence.
func (s *Schema) NewAttrs(input map[string]any) *Attrs {
	resolved := make(map[string]any, len(input))
	for name, value := range input {
		if _, ok := s.attrIdx[name]; ok {
			resolved[name] = value
		}
	}

	for _, g := range s.groups {
		discriminator, ok := resolved[g.attr]
		if !ok {
			if def, exists := s.attrIdx[g.attr]; exists && def.hasDefault {
				discriminator = def.def
			}
		}
		bundle := g.bundles[groupKey(discriminator)]
		for name, value := range bundle {
			if _, declared := s.attrIdx[name]; !declared {
				continue
			}
			if _, set := resolved[name]; !set {
				resolved[name] = value
			}
		}
	}

	values := make(map[string]any, len(resolved))
	for _, def := range s.attrs {
		value, ok := resolved[def.name]
		if !ok {
			if !def.hasDefault {
				continue
			}
			value = def.def
		}
		if !isSetValue(value) {
			continue
		}
		if value == true {
			value = "true"
		}
		values[def.name] = value
	}

	return &Attrs{schema: s, values: values}
}

// Get returns the current value of an attribute, or nil when unset.
func (a *Attrs) Get(name string) any {
	return a.values[name]
}

// Has reports whether the attribute holds a set value.
func (a *Attrs) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Each calls fn for every set attribute in schema declaration order.
func (a *Attrs) Each(fn func(name string, value any)) {
	for _, def := range a.schema.attrs {
		if value, ok := a.values[def.name]; ok {
			fn(def.name, value)
		}
	}
}

// Values returns a copy of the set attribute values.
func (a *Attrs) Values() map[string]any {
	out := make(map[string]any, len(a.values))
	for name, value := range a.values {
		out[name] = value
	}
	return out
}

// Len returns the number of set attributes.
func (a *Attrs) Len() int {
	return len(a.values)
}

// TagAttrs builds the tag attribute container from the declared tag,
// data, and aria subsets. The container is built once, on first access,
// and memoized; attribute state must not change afterwards.
func (a *Attrs) TagAttrs() *TagAttrs {
	if a.tag != nil {
		return a.tag
	}

	tag := make(map[string]any)
	data := make(map[string]any)
	aria := make(map[string]any)
	for _, def := range a.schema.attrs {
		value, ok := a.values[def.name]
		if !ok {
			continue
		}
		switch def.kind {
		case kindTag:
			tag[def.name] = value
		case kindData:
			data[def.name] = value
		case kindAria:
			aria[def.name] = value
		}
	}

	t := NewTagAttrs().Add(tag)
	if len(data) > 0 {
		t.Add(map[string]any{"data": data})
	}
	if len(aria) > 0 {
		t.Add(map[string]any{"aria": aria})
	}
	a.tag = t
	return t
}

// Classname returns the space-joined class entry of the tag attributes.
func (a *Attrs) Classname() string {
	return a.TagAttrs().Classname()
}

// Data returns the nested data attribute group. Never nil.
func (a *Attrs) Data() *TagAttrs {
	return a.group("data")
}

// Aria returns the nested aria attribute group. Never nil.
func (a *Attrs) Aria() *TagAttrs {
	return a.group("aria")
}

func (a *Attrs) group(name string) *TagAttrs {
	if g, ok := a.TagAttrs().Get(name).(*TagAttrs); ok {
		return g
	}
	return NewTagAttrs()
}

// isSetValue is the "set" predicate for instance attribute state:
// not nil and not empty. Booleans are always set — false is a value,
// not absence.
func isSetValue(value any) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	return !isEmptyValue(value)
}
