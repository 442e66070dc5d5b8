package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pthm/vcmp"
	"github.com/pthm/vcmp/example/components"
)

func main() {
	ctx := context.Background()

	// A themed alert: the theme default group fills icon and color.
	alert := components.NewAlert("Disk space low", map[string]any{"theme": "warning"})
	fmt.Printf("<div %s>%s</div>\n", alert.TagAttrs(), alert.Message)

	// Explicit attributes beat the bundle.
	custom := components.NewAlert("Saved", map[string]any{"theme": "notice", "icon": "check"})
	fmt.Printf("<div %s>%s</div>\n", custom.TagAttrs(), custom.Message)

	// A card with lazily-populated elements.
	card := components.NewCard(map[string]any{"class": "card card--wide"}, []string{"one", "two", "three"})
	html, err := card.Render(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)

	// Round-trip the card's attribute state through a signed token.
	enc, err := vcmp.NewEncoder([]byte("example-key-must-be-32-bytes!!"))
	if err != nil {
		log.Fatal(err)
	}
	token, err := vcmp.StateToken(enc, card.Attrs(), false)
	if err != nil {
		log.Fatal(err)
	}
	state, err := vcmp.ParseStateToken(enc, token, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("state token round-trip: %v\n", state["class"])
}
