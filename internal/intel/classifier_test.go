package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tourops/security_intel_system/internal/models"
)

func TestClassify_HomicideKeywordWins(t *testing.T) {
	// Лексика убийств срабатывает без зависимости от числа жертв
	category := Classify("3 killed in shooting downtown", "")
	assert.Equal(t, models.CategoryHomicide, category)
}

func TestClassify_Priority_HomicideOverProtest(t *testing.T) {
	// При смешанной лексике выигрывает более тяжелая категория
	category := Classify("Man shot dead during protest", "")
	assert.Equal(t, models.CategoryHomicide, category)
}

func TestClassify_French(t *testing.T) {
	assert.Equal(t, models.CategoryHomicide, Classify("Un homme tué dans le 18e arrondissement", ""))
	assert.Equal(t, models.CategoryProtest, Classify("Manifestation contre la réforme", ""))
}

func TestClassify_Accident(t *testing.T) {
	category := Classify("Bus crash on highway leaves several injured", "")
	assert.Equal(t, models.CategoryAccident, category)
}

func TestClassify_Unknown(t *testing.T) {
	category := Classify("New museum opens in city center", "")
	assert.Equal(t, models.CategoryUnknown, category)
}

func TestClassify_SnippetIncluded(t *testing.T) {
	category := Classify("Breaking news", "police confirm a stabbing near the station")
	assert.Equal(t, models.CategoryHomicide, category)
}

func TestClassifyEvent_FatalitiesForceHomicide(t *testing.T) {
	category := ClassifyEvent("Clashes near the stadium", "", 2)
	assert.Equal(t, models.CategoryHomicide, category)
}

func TestClassifyEvent_ZeroFatalitiesKeepsKeywordResult(t *testing.T) {
	category := ClassifyEvent("Protest blocks main boulevard", "", 0)
	assert.Equal(t, models.CategoryProtest, category)
}

func TestSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Shooting in Paris", "Shooting in Paris"))
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("SHOOTING IN PARIS", "shooting in paris"))
}

func TestSimilarity_NearDuplicate(t *testing.T) {
	sim := Similarity("Man killed in Marseille shooting", "Man killed in Marseille shooting.")
	assert.GreaterOrEqual(t, sim, 0.9)
}

func TestSimilarity_DifferentTitles(t *testing.T) {
	sim := Similarity("Protest in Berlin", "Earthquake hits Tokyo region")
	assert.Less(t, sim, TitleSimilarityThreshold)
}

func TestSimilarity_EmptyStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", ""))
}
