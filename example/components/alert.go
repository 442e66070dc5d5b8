package components

import "github.com/pthm/vcmp"

// alertSchema shows default groups: the theme attribute picks a bundle
// of icon/color defaults, and explicit attributes always win.
var alertSchema = vcmp.NewSchema("Alert").
	Attr("class", vcmp.Tag(), vcmp.Default("alert")).
	Attr("role", vcmp.Tag(), vcmp.Default("alert")).
	Attr("theme", vcmp.Default("notice")).
	Attr("icon", vcmp.Data()).
	Attr("color", vcmp.Data()).
	Attr("live", vcmp.Aria(), vcmp.Default("polite")).
	DefaultGroup("theme", map[any]any{
		"notice":  map[string]any{"icon": "message", "color": "blue"},
		"warning": map[string]any{"icon": "triangle", "color": "yellow"},
		"danger":  map[string]any{"icon": "octagon", "color": "red"},
	})

// Alert is a themed notification box.
type Alert struct {
	*vcmp.Base

	Message string
}

// NewAlert creates an alert. Pass theme to switch the default bundle:
//
//	NewAlert("Saved!", map[string]any{"theme": "warning"})
func NewAlert(message string, attrs map[string]any) *Alert {
	return &Alert{
		Base:    alertSchema.New(attrs),
		Message: message,
	}
}
