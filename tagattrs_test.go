package vcmp

import "testing"

func TestTagAttrsNormalization(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		attrs  map[string]any
		expect string
	}{
		{
			name:   "underscore to dash",
			attrs:  map[string]any{"foo_bar": "baz"},
			expect: `foo-bar="baz"`,
		},
		{
			name:   "with data prefix",
			prefix: "data",
			attrs:  map[string]any{"foo_bar": "baz"},
			expect: `data-foo-bar="baz"`,
		},
		{
			name:   "plain key unchanged",
			attrs:  map[string]any{"role": "alert"},
			expect: `role="alert"`,
		},
		{
			name:   "multiple keys sorted within one add",
			attrs:  map[string]any{"role": "alert", "id": "x"},
			expect: `id="x" role="alert"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []TagAttrsOption
			if tt.prefix != "" {
				opts = append(opts, WithPrefix(tt.prefix))
			}
			got := NewTagAttrs(opts...).Add(tt.attrs).String()
			if got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestTagAttrsDropsEmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"empty string slice", []string{}},
		{"empty any slice", []any{}},
		{"empty map", map[string]any{}},
		{"empty nested container", NewTagAttrs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := NewTagAttrs().Add(map[string]any{"key": tt.value})
			if ta.Len() != 0 {
				t.Errorf("container retained empty value %v", tt.value)
			}
			if got := ta.String(); got != "" {
				t.Errorf("String() = %q, want empty", got)
			}
		})
	}
}

func TestTagAttrsDropsEmptyValuesRecursively(t *testing.T) {
	ta := NewTagAttrs().Add(map[string]any{
		"data": map[string]any{
			"controller": "menu",
			"target":     "",
			"params":     map[string]any{},
		},
	})

	if got := ta.String(); got != `data-controller="menu"` {
		t.Errorf("String() = %q, want %q", got, `data-controller="menu"`)
	}
}

func TestTagAttrsDropsGroupWithOnlyEmptyEntries(t *testing.T) {
	ta := NewTagAttrs().Add(map[string]any{
		"aria": map[string]any{"label": nil},
	})
	if ta.Len() != 0 {
		t.Errorf("expected empty container, got %q", ta.String())
	}
}

func TestTagAttrsBooleans(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]any
		expect string
	}{
		{
			name:   "true renders as literal true",
			attrs:  map[string]any{"disabled": true},
			expect: `disabled="true"`,
		},
		{
			name:   "false is retained and renders as false",
			attrs:  map[string]any{"muted": false},
			expect: `muted="false"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTagAttrs().Add(tt.attrs).String()
			if got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestTagAttrsNestedGroups(t *testing.T) {
	ta := NewTagAttrs().
		Add(map[string]any{"class": "card"}).
		Add(map[string]any{"data": map[string]any{"controller": "menu", "action_name": "open"}}).
		Add(map[string]any{"aria": map[string]any{"hidden": true}})

	want := `class="card" data-action-name="open" data-controller="menu" aria-hidden="true"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsNestedGroupMerging(t *testing.T) {
	ta := NewTagAttrs().
		Add(map[string]any{"data": map[string]any{"controller": "menu"}}).
		Add(map[string]any{"data": map[string]any{"target": "nav"}})

	group, ok := ta.Get("data").(*TagAttrs)
	if !ok {
		t.Fatal("expected nested data group")
	}
	if group.Len() != 2 {
		t.Errorf("group.Len() = %d, want 2", group.Len())
	}
	want := `data-controller="menu" data-target="nav"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsInsertionOrderAcrossAdds(t *testing.T) {
	ta := NewTagAttrs().
		Add(map[string]any{"role": "alert"}).
		Add(map[string]any{"id": "x"})

	want := `role="alert" id="x"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsReplaceKeepsPosition(t *testing.T) {
	ta := NewTagAttrs().
		Add(map[string]any{"role": "alert"}).
		Add(map[string]any{"id": "x"}).
		Add(map[string]any{"role": "status"})

	want := `role="status" id="x"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsClassname(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"string", "card card--wide", "card card--wide"},
		{"string slice", []string{"card", "card--wide"}, "card card--wide"},
		{"absent", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := NewTagAttrs()
			if tt.value != nil {
				ta.Add(map[string]any{"class": tt.value})
			}
			if got := ta.Classname(); got != tt.expect {
				t.Errorf("Classname() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestTagAttrsClassSliceSerialization(t *testing.T) {
	ta := NewTagAttrs().Add(map[string]any{"class": []string{"card", "card--wide"}})
	want := `class="card card--wide"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsValueEscaping(t *testing.T) {
	ta := NewTagAttrs().Add(map[string]any{"title": `say "hi" & bye`})
	want := `title="say &#34;hi&#34; &amp; bye"`
	if got := ta.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTagAttrsAttrsFlattening(t *testing.T) {
	ta := NewTagAttrs().
		Add(map[string]any{"class": "card"}).
		Add(map[string]any{"data": map[string]any{"controller": "menu"}})

	attrs := ta.Attrs()
	if attrs["class"] != "card" {
		t.Errorf("attrs[class] = %v, want card", attrs["class"])
	}
	if attrs["data-controller"] != "menu" {
		t.Errorf("attrs[data-controller] = %v, want menu", attrs["data-controller"])
	}
}
