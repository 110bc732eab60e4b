package shape

import (
	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// palette is the fixed overlay color cycle, indexed by pair key mod 5.
// Order: blue, orange, green, red, purple. The label color is a darker
// shade of the stroke.
var palette = []models.ShapeStyle{
	{StrokeColor: "#1E88E5", FillColor: "#90CAF9", LabelColor: "#0D47A1"}, // blue
	{StrokeColor: "#FB8C00", FillColor: "#FFCC80", LabelColor: "#E65100"}, // orange
	{StrokeColor: "#43A047", FillColor: "#A5D6A7", LabelColor: "#1B5E20"}, // green
	{StrokeColor: "#E53935", FillColor: "#EF9A9A", LabelColor: "#B71C1C"}, // red
	{StrokeColor: "#8E24AA", FillColor: "#CE93D8", LabelColor: "#4A148C"}, // purple
}

// StyleForKey returns the palette entry for a pair key
func StyleForKey(key int) models.ShapeStyle {
	i := key % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}
