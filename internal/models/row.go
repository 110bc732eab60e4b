package models

import "strings"

// Row is one normalized CSV record. Row order is significant:
// row 0 is the map center reference, row 1 the current-position pin,
// rows 2+ are places and shape-pair corner rows.
type Row struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Address     string     `json:"address"`
	Color       string     `json:"color"`
	Genre       string     `json:"genre"`
	Price       string     `json:"price"`
	ShapeSpec   string     `json:"shape_spec"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	Offset      OffsetSpec `json:"offset"`
}

// genreSeparators are the characters accepted between genre values
const genreSeparators = "/・、,|｜"

// HasCoordinates reports whether the row carries raw coordinates
func (r *Row) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// BasePoint returns the raw (pre-offset) coordinate, or nil
func (r *Row) BasePoint() *GeoPoint {
	if !r.HasCoordinates() {
		return nil
	}
	return &GeoPoint{Lat: *r.Lat, Lng: *r.Lng}
}

// Genres splits the multi-value genre field on any accepted separator
func (r *Row) Genres() []string {
	fields := strings.FieldsFunc(r.Genre, func(c rune) bool {
		return strings.ContainsRune(genreSeparators, c)
	})

	var genres []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			genres = append(genres, f)
		}
	}
	return genres
}
