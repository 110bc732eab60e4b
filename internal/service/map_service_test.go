package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// --- Mocks ---

type mockRowSource struct {
	rows   []models.Row
	loadFn func() ([]models.Row, error)
	saved  []models.Row
}

func (m *mockRowSource) Load() ([]models.Row, error) {
	if m.loadFn != nil {
		return m.loadFn()
	}
	// hand out copies; the service mutates rows during backfill
	rows := make([]models.Row, len(m.rows))
	copy(rows, m.rows)
	return rows, nil
}

func (m *mockRowSource) Save(rows []models.Row) error {
	m.saved = rows
	return nil
}

type mockGeocoder struct {
	points map[string]*models.GeoPoint
	calls  int
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	m.calls++
	return m.points[address], nil
}

// --- Helpers ---

func coordRow(name string, lat, lng float64) models.Row {
	return models.Row{Name: name, Lat: &lat, Lng: &lng}
}

func baseRows() []models.Row {
	return []models.Row{
		coordRow("地図中心", 35.6812, 139.7671),
		coordRow("現在地", 35.6815, 139.7675),
	}
}

func newService(rows []models.Row, geocoder *mockGeocoder) *MapService {
	if geocoder == nil {
		geocoder = &mockGeocoder{}
	}
	return NewMapService(&mockRowSource{rows: rows}, geocoder, 17)
}

// --- Tests ---

func TestBuildMap_InsufficientRows(t *testing.T) {
	svc := newService([]models.Row{coordRow("中心", 35, 139)}, nil)

	_, err := svc.BuildMap(context.Background())
	if !errors.Is(err, ErrInsufficientRows) {
		t.Fatalf("err = %v, want ErrInsufficientRows", err)
	}
}

func TestBuildMap_CenterUnresolved(t *testing.T) {
	rows := []models.Row{
		{Name: "中心", Address: "未知の住所"},
		coordRow("現在地", 35, 139),
	}

	_, err := newService(rows, nil).BuildMap(context.Background())
	if !errors.Is(err, ErrCenterUnresolved) {
		t.Fatalf("err = %v, want ErrCenterUnresolved", err)
	}
}

func TestBuildMap_PinFailureDegrades(t *testing.T) {
	rows := []models.Row{
		coordRow("地図中心", 35.6812, 139.7671),
		{Name: "現在地", Address: "未知の住所"},
		coordRow("鳥さわ", 35.7112, 139.7912),
	}

	payload, err := newService(rows, nil).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if payload.CurrentPin != nil {
		t.Errorf("current pin should be null")
	}
	if len(payload.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", payload.Warnings)
	}
	if payload.Places[0].DistanceM != nil {
		t.Errorf("distance must be absent without a pin")
	}
}

func TestBuildMap_AppliesOffsets(t *testing.T) {
	rows := baseRows()
	store := coordRow("店", 35.0, 139.0)
	store.Offset = models.OffsetSpec{NorthM: 111.32, EastM: 0} // 0.001 degrees of latitude
	rows = append(rows, store)

	payload, err := newService(rows, nil).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(payload.Places))
	}

	got := payload.Places[0].Position.Lat
	if got < 35.0009 || got > 35.0011 {
		t.Errorf("offset not applied: lat = %v", got)
	}
}

func TestBuildMap_OutOfRangeExcluded(t *testing.T) {
	rows := baseRows()
	bad := coordRow("範囲外", 89.9999, 139.0)
	bad.Offset = models.OffsetSpec{NorthM: 50000} // pushes lat past 90
	rows = append(rows, bad)

	payload, err := newService(rows, nil).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Places) != 0 {
		t.Errorf("out-of-range place must be excluded: %v", payload.Places)
	}

	found := false
	for _, w := range payload.Warnings {
		if strings.Contains(w, "範囲外") && strings.Contains(w, "out of range") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing out-of-range warning: %v", payload.Warnings)
	}
}

func TestBuildMap_GeocodesAddressRows(t *testing.T) {
	geocoder := &mockGeocoder{points: map[string]*models.GeoPoint{
		"東京都台東区": {Lat: 35.7112, Lng: 139.7912},
	}}

	rows := baseRows()
	rows = append(rows,
		models.Row{Name: "鳥さわ", Address: "東京都台東区"},
		models.Row{Name: "閉店済", Address: "見つからない住所"},
	)

	payload, err := newService(rows, geocoder).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Places) != 1 || payload.Places[0].Name != "鳥さわ" {
		t.Fatalf("places = %v", payload.Places)
	}
	if payload.Places[0].DistanceM == nil || *payload.Places[0].DistanceM <= 0 {
		t.Errorf("distance from pin not set")
	}
	if len(payload.Warnings) != 1 || !strings.Contains(payload.Warnings[0], "閉店済") {
		t.Errorf("warnings = %v", payload.Warnings)
	}
}

func TestBuildMap_BuildsShapesAndMarkers(t *testing.T) {
	rows := baseRows()
	ul := coordRow("左上1", 35.000, 139.000)
	ul.Description = "駐車場"
	lr := coordRow("右下1", 34.999, 139.001)
	rows = append(rows, ul, lr,
		coordRow("店A", 35.7112, 139.7912),
		coordRow("店B", 35.7112, 139.7912),
	)

	payload, err := newService(rows, nil).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(payload.Shapes) != 1 {
		t.Fatalf("shapes = %v", payload.Shapes)
	}
	if payload.Shapes[0].Kind != models.ShapeRectangle || payload.Shapes[0].Label != "駐車場" {
		t.Errorf("shape = %+v", payload.Shapes[0])
	}

	// corner rows must not leak into places
	if len(payload.Places) != 2 {
		t.Fatalf("places = %v", payload.Places)
	}
	if len(payload.Markers) != 1 || len(payload.Markers[0].Places) != 2 {
		t.Errorf("co-located places should group into one marker: %v", payload.Markers)
	}
}

func TestBuildMap_IncompletePairWarns(t *testing.T) {
	rows := append(baseRows(), coordRow("左上9", 35.000, 139.000))

	payload, err := newService(rows, nil).BuildMap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Shapes) != 0 {
		t.Errorf("incomplete pair must produce no shape")
	}
	if len(payload.Warnings) != 1 || !strings.Contains(payload.Warnings[0], "9") {
		t.Errorf("warnings = %v", payload.Warnings)
	}
}

func TestBackfill_UpdatesAndSaves(t *testing.T) {
	geocoder := &mockGeocoder{points: map[string]*models.GeoPoint{
		"東京都台東区": {Lat: 35.7112, Lng: 139.7912},
	}}

	source := &mockRowSource{rows: []models.Row{
		coordRow("地図中心", 35.6812, 139.7671),          // already has coordinates
		{Name: "鳥さわ", Address: "東京都台東区"},             // needs backfill
		{Name: "謎の店", Address: "見つからない住所"},           // not found, left alone
		{Name: "住所なし"},                               // nothing to geocode
	}}

	svc := NewMapService(source, geocoder, 17)
	updated, err := svc.Backfill(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}
	if source.saved == nil {
		t.Fatal("rows were not saved")
	}
	if source.saved[1].Lat == nil || *source.saved[1].Lat != 35.7112 {
		t.Errorf("backfilled row not updated: %+v", source.saved[1])
	}
	if geocoder.calls != 2 {
		t.Errorf("geocoder called %d times, want 2", geocoder.calls)
	}
}

func TestBackfill_NoChangesNoSave(t *testing.T) {
	source := &mockRowSource{rows: []models.Row{
		coordRow("地図中心", 35.6812, 139.7671),
	}}

	svc := NewMapService(source, &mockGeocoder{}, 17)
	updated, err := svc.Backfill(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if updated != 0 || source.saved != nil {
		t.Errorf("nothing should be written when no row changed")
	}
}
