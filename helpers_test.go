package vcmp

import "testing"

func TestClassnames(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		expect string
	}{
		{
			name:   "strings joined",
			args:   []any{"card", "card--wide"},
			expect: "card card--wide",
		},
		{
			name:   "empty strings skipped",
			args:   []any{"card", "", "open"},
			expect: "card open",
		},
		{
			name:   "nil skipped",
			args:   []any{"card", nil},
			expect: "card",
		},
		{
			name:   "slice flattened",
			args:   []any{[]string{"a", "b"}},
			expect: "a b",
		},
		{
			name:   "conditional map in sorted order",
			args:   []any{"card", map[string]bool{"z-on": true, "a-on": true, "off": false}},
			expect: "card a-on z-on",
		},
		{
			name:   "no args",
			args:   nil,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classnames(tt.args...); got != tt.expect {
				t.Errorf("Classnames() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestMergeAttrs(t *testing.T) {
	base := map[string]any{"class": "item", "role": "listitem"}
	overrides := map[string]any{"class": "special"}

	merged := MergeAttrs(base, overrides)

	if merged["class"] != "special" {
		t.Errorf("class = %v, want special", merged["class"])
	}
	if merged["role"] != "listitem" {
		t.Errorf("role = %v, want listitem", merged["role"])
	}
	if base["class"] != "item" {
		t.Error("MergeAttrs mutated its base input")
	}
}
