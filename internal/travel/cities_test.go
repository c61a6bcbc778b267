package travel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestCitiesSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req["country"] != "Japan" {
			t.Errorf("expected country Japan, got %q", req["country"])
		}
		_, _ = w.Write([]byte(`{"error": false, "data": ["Tokyo", "Osaka", "Kyoto"]}`))
	}))
	defer upstream.Close()

	client := NewClient(Config{CitiesURL: upstream.URL})

	got := client.Cities(context.Background(), "japan")
	want := []string{"Tokyo", "Osaka", "Kyoto"}
	if !reflect.DeepEqual(got.Cities, want) {
		t.Fatalf("expected %v, got %v", want, got.Cities)
	}
}

func TestCitiesUpstreamErrorFlagGivesFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": true, "msg": "country not found"}`))
	}))
	defer upstream.Close()

	client := NewClient(Config{CitiesURL: upstream.URL})

	got := client.Cities(context.Background(), "france")
	if !reflect.DeepEqual(got.Cities, FallbackCities("France")) {
		t.Fatalf("expected France fallback, got %v", got.Cities)
	}
}

func TestCitiesUnreachableUpstreamGivesFallback(t *testing.T) {
	client := NewClient(Config{CitiesURL: "http://127.0.0.1:1"})

	got := client.Cities(context.Background(), "Morocco")
	want := []string{"Casablanca", "Rabat", "Marrakech", "Fes", "Tangier", "Agadir", "Chefchaouen", "Essaouira"}
	if !reflect.DeepEqual(got.Cities, want) {
		t.Fatalf("expected Morocco fallback, got %v", got.Cities)
	}
}

func TestCitiesUnreachableUpstreamUnknownCountryIsEmpty(t *testing.T) {
	client := NewClient(Config{CitiesURL: "http://127.0.0.1:1"})

	got := client.Cities(context.Background(), "atlantis")
	if got.Cities == nil || len(got.Cities) != 0 {
		t.Fatalf("expected empty list, got %v", got.Cities)
	}
}

func TestCitiesNormalizesAliasBeforeCall(t *testing.T) {
	var received string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		received = req["country"]
		_, _ = w.Write([]byte(`{"error": false, "data": ["New York"]}`))
	}))
	defer upstream.Close()

	client := NewClient(Config{CitiesURL: upstream.URL})
	client.Cities(context.Background(), "usa")

	if received != "United States" {
		t.Fatalf("expected alias resolution to United States, got %q", received)
	}
}
