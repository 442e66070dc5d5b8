package vcmp

import (
	"fmt"
	"sort"
	"strings"
)

// Classnames joins class fragments into a single space-separated class
// string. Arguments may be:
//   - string: appended as-is (empty strings are skipped)
//   - []string: each entry appended
//   - map[string]bool: keys with true values appended, in sorted order
//   - nil: skipped
//
// Anything else is stringified. Useful when composing a class attribute
// from static and conditional parts:
//
//	vcmp.Classnames("card", card.Classname(), map[string]bool{"card--open": open})
func Classnames(args ...any) string {
	var parts []string
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					parts = append(parts, s)
				}
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			parts = append(parts, keys...)
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, " ")
}

// MergeAttrs returns a new map with overrides applied over base.
// Neither input is mutated. Useful for composing element defaults with
// caller-supplied attributes in user code.
func MergeAttrs(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
