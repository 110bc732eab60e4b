package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGoogleClient("test-key", 2*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestGoogleClient_ResolvesAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("address") != "東京都台東区" {
			t.Errorf("address param = %q", r.URL.Query().Get("address"))
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key param missing")
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":35.71,"lng":139.79}}}]}`))
	})

	p, err := c.Geocode(context.Background(), "東京都台東区")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Lat != 35.71 || p.Lng != 139.79 {
		t.Errorf("point = %+v", p)
	}
}

func TestGoogleClient_ZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	p, err := c.Geocode(context.Background(), "どこでもない場所")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("want not-found, got %+v", p)
	}
}

func TestGoogleClient_MalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	if _, err := c.Geocode(context.Background(), "x"); err == nil {
		t.Errorf("expected a decode error")
	}
}
