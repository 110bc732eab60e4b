package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// CSV column headers (Japanese, matching the source sheet). Column
// order in the file does not matter on load; Save writes the canonical
// order below.
const (
	colName      = "店名"
	colDesc      = "説明"
	colWebsite   = "URL"
	colAddress   = "住所"
	colColor     = "色"
	colGenre     = "ジャンル"
	colPrice     = "価格帯"
	colShapeSpec = "図形"
	colLat       = "緯度"
	colLng       = "経度"
	colNorthM    = "南北補正"
	colEastM     = "東西補正"
)

var canonicalColumns = []string{
	colName, colDesc, colWebsite, colAddress, colColor, colGenre,
	colPrice, colShapeSpec, colLat, colLng, colNorthM, colEastM,
}

var requiredColumns = []string{colName, colAddress}

// Loader reads and writes the places CSV
type Loader struct {
	path string
}

// New creates a loader for the given CSV path
func New(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the CSV and normalizes each record into a Row. The file
// must carry at least the 店名 and 住所 columns; everything else is
// optional.
func (l *Loader) Load() ([]models.Row, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty: %s", l.path)
	}

	header := records[0]
	// Excel exports prepend a UTF-8 BOM
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", col)
		}
	}

	rows := make([]models.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rows = append(rows, models.Row{
			Name:        field(colName),
			Description: field(colDesc),
			Website:     field(colWebsite),
			Address:     field(colAddress),
			Color:       field(colColor),
			Genre:       field(colGenre),
			Price:       field(colPrice),
			ShapeSpec:   field(colShapeSpec),
			Lat:         optionalFloat(field(colLat)),
			Lng:         optionalFloat(field(colLng)),
			Offset: models.OffsetSpec{
				NorthM: safeFloat(field(colNorthM), 0),
				EastM:  safeFloat(field(colEastM), 0),
			},
		})
	}

	return rows, nil
}

// Save writes rows back in the canonical column order. Coordinates are
// the raw (pre-offset) values, formatted to 7 decimal places.
func (l *Loader) Save(rows []models.Row) error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(canonicalColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Name, r.Description, r.Website, r.Address, r.Color,
			r.Genre, r.Price, r.ShapeSpec,
			formatCoord(r.Lat), formatCoord(r.Lng),
			formatMeters(r.Offset.NorthM), formatMeters(r.Offset.EastM),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func safeFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 7, 64)
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
