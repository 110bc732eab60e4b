package loader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NormalizesRows(t *testing.T) {
	csv := "店名,説明,URL,住所,色,ジャンル,価格帯,図形,緯度,経度,南北補正,東西補正\n" +
		"中心,,,東京都千代田区,,,,,,,0,0\n" +
		"現在地,,,東京都千代田区1-1,,,,,35.68,139.76,,\n" +
		"鳥さわ,焼き鳥,https://example.com/torisawa,東京都台東区,#1E88E5,焼鳥/居酒屋,¥¥,,35.711234,139.791234,12.5,-3\n"

	l := New(writeCSV(t, csv))
	rows, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	r := rows[2]
	if r.Name != "鳥さわ" || r.Description != "焼き鳥" || r.Price != "¥¥" {
		t.Errorf("row fields = %+v", r)
	}
	if r.Lat == nil || *r.Lat != 35.711234 || r.Lng == nil || *r.Lng != 139.791234 {
		t.Errorf("coordinates not parsed: %+v", r)
	}
	if r.Offset.NorthM != 12.5 || r.Offset.EastM != -3 {
		t.Errorf("offsets = %+v", r.Offset)
	}
	if got := r.Genres(); !reflect.DeepEqual(got, []string{"焼鳥", "居酒屋"}) {
		t.Errorf("Genres() = %v", got)
	}

	if rows[0].Lat != nil {
		t.Errorf("empty 緯度 must load as nil")
	}
	if rows[1].Offset.NorthM != 0 {
		t.Errorf("empty offset must default to 0")
	}
}

func TestLoad_GenreSeparatorVariants(t *testing.T) {
	csv := "店名,住所,ジャンル\n" +
		"a,x,和食・寿司、天ぷら|蕎麦｜うどん,\n"

	l := New(writeCSV(t, csv))
	rows, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"和食", "寿司", "天ぷら", "蕎麦", "うどん"}
	if got := rows[0].Genres(); !reflect.DeepEqual(got, want) {
		t.Errorf("Genres() = %v, want %v", got, want)
	}
}

func TestLoad_ColumnOrderDoesNotMatter(t *testing.T) {
	csv := "住所,店名\n東京都,テスト\n"

	l := New(writeCSV(t, csv))
	rows, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Name != "テスト" || rows[0].Address != "東京都" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestLoad_StripsBOM(t *testing.T) {
	csv := "\ufeff店名,住所\nテスト,東京都\n"

	l := New(writeCSV(t, csv))
	rows, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Name != "テスト" {
		t.Errorf("BOM header not recognized: %+v", rows[0])
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	csv := "店名,説明\nテスト,x\n"

	l := New(writeCSV(t, csv))
	if _, err := l.Load(); err == nil || !strings.Contains(err.Error(), "住所") {
		t.Errorf("expected missing-column error naming 住所, got %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	csv := "店名,住所,緯度,経度\n" +
		"a,東京都,35.1234567,139.1234567\n" +
		"b,大阪府,,\n"

	l := New(writeCSV(t, csv))
	rows, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}

	lat, lng := 34.7, 135.5
	rows[1].Lat, rows[1].Lng = &lat, &lng

	if err := l.Save(rows); err != nil {
		t.Fatal(err)
	}

	reloaded, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != 2 {
		t.Fatalf("expected 2 rows after round trip, got %d", len(reloaded))
	}
	if reloaded[0].Lat == nil || *reloaded[0].Lat != 35.1234567 {
		t.Errorf("row a coordinates lost: %+v", reloaded[0])
	}
	if reloaded[1].Lat == nil || *reloaded[1].Lat != 34.7 {
		t.Errorf("backfilled coordinates lost: %+v", reloaded[1])
	}
}
