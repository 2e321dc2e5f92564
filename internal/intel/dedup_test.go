package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/models"
)

func makeEvent(title, datetime string, category models.Category, confidence float64) models.Event {
	return models.Event{
		Title:      title,
		Datetime:   datetime,
		Category:   category,
		Confidence: confidence,
	}
}

func TestDeduplicate_MergesNearDuplicates(t *testing.T) {
	events := []models.Event{
		makeEvent("Man killed in shooting near station", "2026-08-20T10:00:00", models.CategoryHomicide, 0.5),
		makeEvent("Man killed in shooting near station.", "2026-08-20T18:30:00", models.CategoryHomicide, 0.9),
	}

	result := Deduplicate(events)

	require.Len(t, result, 1)
	// Побеждает запись с большей confidence
	assert.Equal(t, 0.9, result[0].Confidence)
}

func TestDeduplicate_KeepsFirstWhenConfidenceEqual(t *testing.T) {
	events := []models.Event{
		makeEvent("Riot breaks out downtown", "2026-08-20", models.CategoryRiot, 0.7),
		makeEvent("Riot breaks out downtown!", "2026-08-20", models.CategoryRiot, 0.7),
	}

	result := Deduplicate(events)

	require.Len(t, result, 1)
	assert.Equal(t, "Riot breaks out downtown", result[0].Title)
}

func TestDeduplicate_DifferentDaysPreserved(t *testing.T) {
	events := []models.Event{
		makeEvent("Protest on main square", "2026-08-20", models.CategoryProtest, 0.5),
		makeEvent("Protest on main square", "2026-08-21", models.CategoryProtest, 0.5),
	}

	result := Deduplicate(events)
	assert.Len(t, result, 2)
}

func TestDeduplicate_DifferentCategoriesPreserved(t *testing.T) {
	events := []models.Event{
		makeEvent("Incident on main square", "2026-08-20", models.CategoryProtest, 0.5),
		makeEvent("Incident on main square", "2026-08-20", models.CategoryHomicide, 0.5),
	}

	result := Deduplicate(events)
	assert.Len(t, result, 2)
}

func TestDeduplicate_DissimilarTitlesPreserved(t *testing.T) {
	events := []models.Event{
		makeEvent("Shooting near central station", "2026-08-20", models.CategoryHomicide, 0.5),
		makeEvent("Stabbing in northern district park", "2026-08-20", models.CategoryHomicide, 0.5),
	}

	result := Deduplicate(events)
	assert.Len(t, result, 2)
}

func TestDeduplicate_Idempotent(t *testing.T) {
	events := []models.Event{
		makeEvent("Man killed in shooting near station", "2026-08-20", models.CategoryHomicide, 0.5),
		makeEvent("Man killed in shooting near station.", "2026-08-20", models.CategoryHomicide, 0.9),
		makeEvent("Protest on main square", "2026-08-21", models.CategoryProtest, 0.5),
	}

	once := Deduplicate(events)
	twice := Deduplicate(once)
	assert.Equal(t, once, twice)
}

func TestDeduplicate_Empty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
	assert.Empty(t, Deduplicate([]models.Event{}))
}
