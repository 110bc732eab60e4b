package shape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// Spec is the parsed form of a free-text shape specification string,
// e.g. "楕円 45度" or "rect -12.5deg". Fallback rules: kind defaults to
// rectangle, rotation defaults to 0 when absent or unparseable.
type Spec struct {
	Kind        models.ShapeKind
	RotationDeg float64
}

var (
	rectangleWords = []string{"長方形", "矩形", "四角", "rect"}
	ellipseWords   = []string{"楕円", "だ円", "ellipse", "oval"}

	// optional minus sign, optional decimal point, optional degree unit
	rotationPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*(?:度|°|deg(?:rees?)?)?`)
)

// ParseSpec extracts the shape kind and rotation angle from a free-text
// specification. Malformed input never fails; it falls back to an
// axis-aligned rectangle.
func ParseSpec(s string) Spec {
	spec := Spec{Kind: models.ShapeRectangle}

	lower := strings.ToLower(s)
	if containsAny(lower, rectangleWords) {
		spec.Kind = models.ShapeRectangle
	} else if containsAny(lower, ellipseWords) {
		spec.Kind = models.ShapeEllipse
	}

	if m := rotationPattern.FindStringSubmatch(s); m != nil {
		if deg, err := strconv.ParseFloat(m[1], 64); err == nil {
			spec.RotationDeg = deg
		}
	}

	return spec
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
