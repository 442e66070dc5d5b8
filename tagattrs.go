package vcmp

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// TagAttrs is an ordered mapping from HTML attribute name to value.
//
// Keys are normalized on insertion (underscores become dashes). Values
// that are nil or empty (empty string, empty slice, empty map, empty
// nested container) are dropped; this applies recursively inside the
// data and aria groups. Boolean false is a real value, not emptiness.
//
// The data and aria keys are special: adding a map under either merges
// it into a nested container whose entries serialize flattened, as
// data-key="value" / aria-key="value".
//
// Serialization order is insertion order; keys within a single Add call
// are applied in sorted order so output is deterministic.
type TagAttrs struct {
	prefix string
	keys   []string
	values map[string]any
}

// TagAttrsOption configures a TagAttrs at construction.
type TagAttrsOption func(*TagAttrs)

// WithPrefix causes every key in the container to be emitted as
// prefix-key. Used for the nested data and aria groups, and available
// for building standalone prefixed containers:
//
//	t := vcmp.NewTagAttrs(vcmp.WithPrefix("data"))
//	t.Add(map[string]any{"foo_bar": "baz"})
//	t.String() // data-foo-bar="baz"
func WithPrefix(prefix string) TagAttrsOption {
	return func(t *TagAttrs) {
		t.prefix = prefix
	}
}

// NewTagAttrs creates an empty tag attribute container.
func NewTagAttrs(opts ...TagAttrsOption) *TagAttrs {
	t := &TagAttrs{values: make(map[string]any)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add merges the given entries into the container and returns the
// container for chaining.
//
// Keys are dash-normalized. Entries under "data" and "aria" whose value
// is a map (or another *TagAttrs) merge recursively into the nested
// group. Nil and empty values are silently dropped; there are no error
// conditions.
func (t *TagAttrs) Add(attrs map[string]any) *TagAttrs {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key := normalizeKey(name)
		value := attrs[name]

		if key == "data" || key == "aria" {
			if nested, ok := groupEntries(value); ok {
				t.addGroup(key, nested)
				continue
			}
		}

		if isEmptyValue(value) {
			continue
		}
		t.set(key, value)
	}
	return t
}

// addGroup merges entries into the nested container stored under key,
// creating it on first use.
func (t *TagAttrs) addGroup(key string, entries map[string]any) {
	group, ok := t.values[key].(*TagAttrs)
	if !ok {
		group = NewTagAttrs()
	}
	group.Add(entries)
	if group.Len() == 0 {
		return
	}
	t.set(key, group)
}

// set stores a value, keeping the original position for known keys.
func (t *TagAttrs) set(key string, value any) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Len returns the number of entries in the container.
func (t *TagAttrs) Len() int {
	return len(t.keys)
}

// Get returns the value stored under the normalized key, or nil.
// Nested groups are returned as *TagAttrs.
func (t *TagAttrs) Get(key string) any {
	return t.values[normalizeKey(key)]
}

// Classname returns the class entry joined as a space-separated string.
// Returns "" when no class entry is present.
func (t *TagAttrs) Classname() string {
	switch v := t.values["class"].(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// String renders the container as an HTML attribute string: key="value"
// pairs, space-joined, values HTML-escaped. Nested groups flatten to
// group-subkey="value". Boolean true renders as the literal string true.
func (t *TagAttrs) String() string {
	var sb strings.Builder
	for i, p := range t.pairs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(formatAttrValue(p.value)))
		sb.WriteByte('"')
	}
	return sb.String()
}

// Attrs flattens the container into a templ.Attributes map for direct
// use in templ templates. Nested groups flatten to group-subkey entries.
//
// Values keep their Go types; templ applies its own attribute rendering
// rules (notably boolean attributes render as bare names).
func (t *TagAttrs) Attrs() templ.Attributes {
	out := make(templ.Attributes, len(t.keys))
	for _, p := range t.pairs() {
		out[p.key] = p.value
	}
	return out
}

type attrPair struct {
	key   string
	value any
}

// pairs flattens the container into ordered key/value pairs with final
// emitted key names (prefix and group names applied).
func (t *TagAttrs) pairs() []attrPair {
	out := make([]attrPair, 0, len(t.keys))
	for _, k := range t.keys {
		key := k
		if t.prefix != "" {
			key = t.prefix + "-" + k
		}
		if nested, ok := t.values[k].(*TagAttrs); ok {
			for _, p := range nested.pairs() {
				out = append(out, attrPair{key + "-" + p.key, p.value})
			}
			continue
		}
		out = append(out, attrPair{key, t.values[k]})
	}
	return out
}

// normalizeKey converts an attribute name to its emitted form.
func normalizeKey(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// groupEntries coerces a data/aria group value into mergeable entries.
func groupEntries(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case *TagAttrs:
		entries := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			entries[k] = v.values[k]
		}
		return entries, true
	}
	return nil, false
}

// formatAttrValue stringifies a value for serialization. Booleans render
// as the literals true and false; string slices join with spaces.
func formatAttrValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case []string:
		return strings.Join(v, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

// isEmptyValue reports whether a value should be dropped from the
// container: nil, empty string, empty slice, empty map, or an empty
// nested container. Booleans are never empty.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return false
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case *TagAttrs:
		return v == nil || v.Len() == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
