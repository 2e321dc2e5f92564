package geo

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/config"
)

func newTestGeocoder(serverURL string) *Geocoder {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	g := NewGeocoder(&config.Config{
		GeocodeTimeout: 5 * time.Second,
		UserAgent:      "test-agent",
	}, logger)
	g.BaseURL = serverURL
	return g
}

func TestGeocode_Success(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Paris, France", r.URL.Query().Get("q"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, Île-de-France, France"}]`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	point := g.Geocode(context.Background(), "Paris", "France")

	require.NotNil(t, point)
	assert.InDelta(t, 48.8566, point.Lat, 0.0001)
	assert.InDelta(t, 2.3522, point.Lon, 0.0001)
	assert.Equal(t, "Paris, Île-de-France, France", point.DisplayName)
}

func TestGeocode_Memoized(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[{"lat":"52.52","lon":"13.405","display_name":"Berlin"}]`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	first := g.Geocode(context.Background(), "Berlin", "Germany")
	second := g.Geocode(context.Background(), "Berlin", "Germany")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGeocode_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	assert.Nil(t, g.Geocode(context.Background(), "Nowhere", "Atlantis"))
}

func TestGeocode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	assert.Nil(t, g.Geocode(context.Background(), "Paris", "France"))
}

func TestGeocode_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	assert.Nil(t, g.Geocode(context.Background(), "Paris", "France"))
}

func TestGeocode_FailureNotCached(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"lat":"40.4168","lon":"-3.7038","display_name":"Madrid"}]`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	assert.Nil(t, g.Geocode(context.Background(), "Madrid", "Spain"))

	// Неудача не мемоизируется, повторный запрос уходит в сеть
	point := g.Geocode(context.Background(), "Madrid", "Spain")
	require.NotNil(t, point)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
