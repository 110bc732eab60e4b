package marker

import (
	"fmt"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// Marker colors
const (
	// DefaultColor is used for places whose row left the color field empty
	DefaultColor = "#E53935"
	// MixedColor marks a group whose entries disagree on pin color.
	// A warm accent tone reserved for this case only.
	MixedColor = "#FF7043"
)

// groupKeyFormat rounds coordinates to 6 decimal places, about 0.11 m
// at the equator, so visually coincident pins merge into one marker.
const groupKeyFormat = "%.6f,%.6f"

// Group clusters places by rounded coordinate. Groups appear in
// first-seen order; entries within a group keep original input order.
func Group(places []models.Place) []models.MarkerGroup {
	index := make(map[string]int)
	var groups []models.MarkerGroup

	for _, p := range places {
		key := fmt.Sprintf(groupKeyFormat, p.Position.Lat, p.Position.Lng)

		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, models.MarkerGroup{
				Position: p.Position,
				Color:    placeColor(p),
				Places:   []models.Place{p},
			})
			continue
		}

		g := &groups[i]
		if placeColor(p) != g.Color {
			g.Color = MixedColor
		}
		g.Places = append(g.Places, p)
	}

	return groups
}

func placeColor(p models.Place) string {
	if p.Color == "" {
		return DefaultColor
	}
	return p.Color
}
