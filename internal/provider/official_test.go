package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/config"
)

func newTestOfficial(t *testing.T, police, gov http.HandlerFunc) *Official {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	p := NewOfficial(&config.Config{OfficialTimeout: 5 * time.Second, UserAgent: "TestAgent/1.0"}, logger)
	if police != nil {
		server := httptest.NewServer(police)
		t.Cleanup(server.Close)
		p.PoliceUKURL = server.URL
	}
	if gov != nil {
		server := httptest.NewServer(gov)
		t.Cleanup(server.Close)
		p.GovUKURL = server.URL
	}
	return p
}

func ptr(v float64) *float64 { return &v }

func TestOfficialCountryCode(t *testing.T) {
	assert.Equal(t, "UK", officialCountryCode("United Kingdom"))
	assert.Equal(t, "UK", officialCountryCode("England"))
	assert.Equal(t, "FR", officialCountryCode("France"))
	assert.Equal(t, "DE", officialCountryCode("de"))
}

func TestOfficial_FetchOfficial_UKSuccess(t *testing.T) {
	police := func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		w.Write([]byte(`[{"category": "burglary"}, {"category": "burglary"}, {"category": "violent-crime"}]`))
	}
	gov := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"title": "Road closure notice", "link": "/news/closure", "description": "Planned demonstration in central London", "public_timestamp": "2025-01-28T09:00:00Z"}]}`))
	}

	p := newTestOfficial(t, police, gov)
	result := p.FetchOfficial(context.Background(), "London", "United Kingdom", ptr(51.5), ptr(-0.12))

	require.True(t, result.Success)
	require.Len(t, result.CrimeData, 2)
	assert.Equal(t, "burglary", result.CrimeData[0].Category)
	assert.Equal(t, 2, result.CrimeData[0].Count)
	assert.Equal(t, "violent-crime", result.CrimeData[1].Category)
	require.Len(t, result.Announcements, 1)
	assert.Equal(t, "https://www.gov.uk/news/closure", result.Announcements[0].URL)
	assert.Equal(t, "2025-01-28", result.Announcements[0].Date)
	assert.Equal(t, []string{"Police.uk", "GOV.UK"}, result.SourcesChecked)
	assert.Equal(t, "Official sources checked", result.Note)
}

func TestOfficial_FetchOfficial_NonUKCountry(t *testing.T) {
	p := newTestOfficial(t, nil, nil)
	result := p.FetchOfficial(context.Background(), "Paris", "France", ptr(48.85), ptr(2.35))

	assert.False(t, result.Success)
	assert.Equal(t, "Official sources unavailable", result.Note)
	assert.Contains(t, result.Err, "Official sources unavailable")
	assert.Empty(t, result.SourcesChecked)
}

func TestOfficial_FetchOfficial_NoCoordinatesSkipsPoliceData(t *testing.T) {
	gov := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}
	p := newTestOfficial(t, nil, gov)
	p.PoliceUKURL = "http://127.0.0.1:1/police"

	result := p.FetchOfficial(context.Background(), "London", "UK", nil, nil)

	// GOV.UK отвечает, поэтому источник в целом доступен
	assert.True(t, result.Success)
	assert.Empty(t, result.CrimeData)
	assert.Equal(t, []string{"Police.uk", "GOV.UK"}, result.SourcesChecked)
}

func TestOfficial_DemonstrationAlerts_FiltersAnnouncements(t *testing.T) {
	gov := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"title": "Protest expected on Saturday", "link": "/news/protest", "description": "Public gathering planned", "public_timestamp": "2025-01-28T09:00:00Z"},
			{"title": "New passport rules", "link": "/news/passports", "description": "Guidance update", "public_timestamp": "2025-01-27T09:00:00Z"}
		]}`))
	}
	police := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}

	p := newTestOfficial(t, police, gov)
	result := p.DemonstrationAlerts(context.Background(), "London", "UK", ptr(51.5), ptr(-0.12))

	require.True(t, result.Success)
	require.Len(t, result.Announcements, 1)
	assert.Equal(t, "Protest expected on Saturday", result.Announcements[0].Title)
}

func TestOfficial_DemonstrationAlerts_UnavailableSources(t *testing.T) {
	p := newTestOfficial(t, nil, nil)
	p.PoliceUKURL = "http://127.0.0.1:1/police"
	p.GovUKURL = "http://127.0.0.1:1/gov"

	result := p.DemonstrationAlerts(context.Background(), "London", "UK", nil, nil)

	assert.False(t, result.Success)
	assert.Empty(t, result.Announcements)
	assert.Equal(t, "Official sources unavailable", result.Note)
}
