package services_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnav/internal/models/domain_models"
	"campusnav/internal/services"
	"campusnav/pkg/geo"
)

var campusRegion = geo.BoundingRegion{
	Center:       domain_models.Coordinate{Latitude: 7.4443, Longitude: 3.8973},
	RadiusMeters: 3000,
}

func newPlacesClient(t *testing.T, handler http.HandlerFunc) *services.GooglePlacesClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return services.NewGooglePlacesClient("test-key", srv.URL, campusRegion)
}

func placesBody(records ...string) string {
	body := `{"status":"OK","results":[`
	for i, r := range records {
		if i > 0 {
			body += ","
		}
		body += r
	}
	return body + `]}`
}

func placeRecord(id, name string, lat, lng float64, placeType string) string {
	return fmt.Sprintf(`{
		"place_id": %q,
		"name": %q,
		"formatted_address": "Agbowo, Ibadan",
		"rating": 4.3,
		"geometry": {"location": {"lat": %f, "lng": %f}},
		"types": [%q, "point_of_interest"]
	}`, id, name, lat, lng, placeType)
}

func TestPlacesSearch_NormalizesRecords(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bookshop", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "3000", r.URL.Query().Get("radius"))
		assert.NotEmpty(t, r.URL.Query().Get("location"))
		fmt.Fprint(w, placesBody(placeRecord("pl-1", "Booksellers Agbowo", 7.4452, 3.8969, "book_store")))
	})

	got, err := client.Search(context.Background(), "bookshop", 8)

	require.NoError(t, err)
	require.Len(t, got, 1)
	loc := got[0]
	assert.Equal(t, "pl-1", loc.ID)
	assert.Equal(t, "Booksellers Agbowo", loc.Name)
	assert.Equal(t, domain_models.SourcePlacesAPI, loc.Source)
	assert.Equal(t, domain_models.CategoryShopping, loc.Category)
	assert.Equal(t, "Agbowo, Ibadan", loc.Address)
	assert.InDelta(t, 4.3, loc.Rating, 1e-9)
	assert.InDelta(t, 7.4452, loc.Coordinates.Latitude, 1e-9)
}

func TestPlacesSearch_DropsRecordsWithoutCoordinates(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, placesBody(
			placeRecord("pl-good", "Good Place", 7.4452, 3.8969, "cafe"),
			`{"place_id": "pl-nogeo", "name": "No Geometry", "types": ["cafe"]}`,
			placeRecord("pl-bad", "Bad Latitude", 123.0, 3.9, "cafe"),
		))
	})

	got, err := client.Search(context.Background(), "cafe", 8)

	require.NoError(t, err)
	require.Len(t, got, 1, "partial success: bad records dropped, good ones kept")
	assert.Equal(t, "pl-good", got[0].ID)
}

func TestPlacesSearch_TruncatesToMaxResults(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, placesBody(
			placeRecord("pl-1", "One", 7.4451, 3.8970, "cafe"),
			placeRecord("pl-2", "Two", 7.4452, 3.8971, "cafe"),
			placeRecord("pl-3", "Three", 7.4453, 3.8972, "cafe"),
		))
	})

	got, err := client.Search(context.Background(), "cafe", 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPlacesSearch_ZeroResultsIsNotAnError(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	got, err := client.Search(context.Background(), "nothing here", 8)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlacesSearch_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind services.ErrorKind
	}{
		{"quota exceeded", `{"status":"OVER_QUERY_LIMIT","error_message":"daily limit"}`, services.KindQuota},
		{"request denied", `{"status":"REQUEST_DENIED","error_message":"bad key"}`, services.KindAuth},
		{"unknown status", `{"status":"UNKNOWN_ERROR"}`, services.KindMalformedResponse},
		{"invalid json", `{"status":`, services.KindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := client.Search(context.Background(), "library", 8)

			requireApiErrorKind(t, err, tt.wantKind)
		})
	}
}

func TestPlacesSearch_AuthStatusCode(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), "library", 8)

	requireApiErrorKind(t, err, services.KindAuth)
}

func TestPlacesSearch_QuotaStatusCode(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "library", 8)

	requireApiErrorKind(t, err, services.KindQuota)
}

func TestPlacesSearch_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "library", 8)

	requireApiErrorKind(t, err, services.KindNetwork)
	assert.Equal(t, int32(1), calls.Load(), "application errors must not be retried")
}

func TestPlacesSearch_RetriesOnceOnConnectionReset(t *testing.T) {
	var calls atomic.Int32
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Drop the connection mid-flight to simulate a reset.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		fmt.Fprint(w, placesBody(placeRecord("pl-1", "Recovered", 7.4451, 3.8970, "cafe")))
	})

	got, err := client.Search(context.Background(), "cafe", 8)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPlacesSearch_TimeoutClassification(t *testing.T) {
	client := newPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.HTTP.Timeout = 30 * time.Millisecond

	_, err := client.Search(context.Background(), "library", 8)

	requireApiErrorKind(t, err, services.KindTimeout)
}

func requireApiErrorKind(t *testing.T, err error, want services.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var apiErr *services.ApiError
	require.True(t, errors.As(err, &apiErr), "want *ApiError, got %T", err)
	assert.Equal(t, want, apiErr.Kind)
}
