package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mnakagawa/eatmap-backend-go/internal/geocode"
	"github.com/mnakagawa/eatmap-backend-go/internal/marker"
	"github.com/mnakagawa/eatmap-backend-go/internal/models"
	"github.com/mnakagawa/eatmap-backend-go/internal/shape"
	"github.com/mnakagawa/eatmap-backend-go/internal/spatial"
)

// RowSource loads and stores the places CSV
type RowSource interface {
	Load() ([]models.Row, error)
	Save(rows []models.Row) error
}

// Row protocol errors. Per-row problems become payload warnings
// instead; these two are the only hard failures of a build.
var (
	ErrInsufficientRows = errors.New("csv needs at least 2 rows: map center and current position")
	ErrCenterUnresolved = errors.New("map center could not be resolved")
)

// MapService builds the render payload from the CSV row protocol:
// row 0 = map center, row 1 = current-position pin, rows 2+ = places
// and shape-pair corner rows.
type MapService struct {
	rows     RowSource
	geocoder geocode.Geocoder
	zoom     int
}

// NewMapService creates a new map service
func NewMapService(rows RowSource, geocoder geocode.Geocoder, zoom int) *MapService {
	return &MapService{rows: rows, geocoder: geocoder, zoom: zoom}
}

// BuildMap loads the CSV and produces the full render payload. The
// build never aborts for one bad row: unresolvable places, incomplete
// shape pairs and out-of-range coordinates turn into warnings.
func (s *MapService) BuildMap(ctx context.Context) (*models.RenderPayload, error) {
	rows, err := s.rows.Load()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrInsufficientRows
	}

	payload := &models.RenderPayload{
		Zoom:     s.zoom,
		Places:   []models.Place{},
		Shapes:   []models.Shape{},
		Warnings: []string{},
	}

	center, warn := s.resolve(ctx, &rows[0])
	if center == nil {
		if warn != "" {
			payload.Warnings = append(payload.Warnings, warn)
		}
		return nil, fmt.Errorf("%w: %q", ErrCenterUnresolved, rows[0].Address)
	}
	payload.MapCenter = *center

	pin, warn := s.resolve(ctx, &rows[1])
	if pin == nil {
		payload.Warnings = append(payload.Warnings, warnOr(warn,
			fmt.Sprintf("current position %q could not be resolved", rows[1].Address)))
	}
	payload.CurrentPin = pin

	var corners []shape.Corner
	tail := rows[2:]
	for i := range tail {
		row := &tail[i]

		if key, upperLeft, ok := shape.MatchCornerRow(row.Name); ok {
			// unresolved corners are reported by the shape builder,
			// which knows the pair key
			point, _ := s.resolve(ctx, row)
			corners = append(corners, shape.Corner{
				Key:       key,
				UpperLeft: upperLeft,
				Point:     point,
				SpecText:  row.ShapeSpec,
				Label:     row.Description,
			})
			continue
		}

		point, warn := s.resolve(ctx, row)
		if point == nil {
			payload.Warnings = append(payload.Warnings, warnOr(warn,
				fmt.Sprintf("row %q: address could not be resolved", row.Name)))
			continue
		}

		place := models.Place{
			Name:        row.Name,
			Description: row.Description,
			Website:     row.Website,
			Color:       row.Color,
			Genres:      row.Genres(),
			Price:       row.Price,
			Position:    *point,
		}
		if pin != nil {
			d := spatial.HaversineDistance(pin.Lat, pin.Lng, point.Lat, point.Lng)
			place.DistanceM = &d
		}
		payload.Places = append(payload.Places, place)
	}

	shapes, shapeWarnings := shape.Build(corners)
	payload.Shapes = shapes
	payload.Warnings = append(payload.Warnings, shapeWarnings...)
	payload.Markers = marker.Group(payload.Places)

	return payload, nil
}

// Backfill geocodes every row missing raw coordinates and writes the
// CSV back with the resolved (pre-offset) values. Returns the number of
// rows updated.
func (s *MapService) Backfill(ctx context.Context) (int, error) {
	rows, err := s.rows.Load()
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range rows {
		row := &rows[i]
		if row.HasCoordinates() || row.Address == "" {
			continue
		}

		point, err := s.geocoder.Geocode(ctx, row.Address)
		if err != nil {
			return updated, fmt.Errorf("backfill of %q failed: %w", row.Address, err)
		}
		if point == nil {
			continue
		}

		row.Lat, row.Lng = &point.Lat, &point.Lng
		updated++
	}

	if updated > 0 {
		if err := s.rows.Save(rows); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// resolve produces the final position of a row: raw coordinates if the
// CSV has them, geocoded otherwise, with the meter offset applied and
// the WGS84 bounds checked. A nil point comes with a warning.
func (s *MapService) resolve(ctx context.Context, row *models.Row) (*models.GeoPoint, string) {
	base := row.BasePoint()
	if base == nil {
		p, err := s.geocoder.Geocode(ctx, row.Address)
		if err != nil {
			return nil, fmt.Sprintf("row %q: geocoding failed: %v", row.Name, err)
		}
		if p == nil {
			return nil, fmt.Sprintf("row %q: address %q not found", row.Name, row.Address)
		}
		base = p
	}

	dlat, dlng := spatial.Project(base.Lat, row.Offset.NorthM, row.Offset.EastM)
	final := models.GeoPoint{Lat: base.Lat + dlat, Lng: base.Lng + dlng}

	if !final.Valid() {
		return nil, fmt.Sprintf("row %q: coordinate out of range (%.6f, %.6f)", row.Name, final.Lat, final.Lng)
	}
	return &final, ""
}

func warnOr(warn, fallback string) string {
	if warn != "" {
		return warn
	}
	return fallback
}
