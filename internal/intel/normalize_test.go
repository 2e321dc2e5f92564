package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertISO2(t *testing.T) {
	assert.Equal(t, "France", ConvertISO2("FR"))
	assert.Equal(t, "France", ConvertISO2("fr"))
	assert.Equal(t, "United Kingdom", ConvertISO2("GB"))
	// Незнакомый ввод - как есть
	assert.Equal(t, "France", ConvertISO2("France"))
	assert.Equal(t, "XX", ConvertISO2("XX"))
	assert.Equal(t, "", ConvertISO2(""))
}

func TestNormalizeCityCountry_CityStateCorrection(t *testing.T) {
	loc := NormalizeCityCountry("Mexico", "")

	assert.Equal(t, "Mexico City", loc.City)
	assert.Equal(t, "Mexico", loc.Country)
	assert.Contains(t, loc.Aliases, "CDMX")
}

func TestNormalizeCityCountry_ExplicitCountryKept(t *testing.T) {
	loc := NormalizeCityCountry("mexico", "Mexico")

	assert.Equal(t, "Mexico City", loc.City)
	assert.Equal(t, "Mexico", loc.Country)
}

func TestNormalizeCityCountry_CityEqualsCountry(t *testing.T) {
	// Для стран вне таблицы коррекций синтезируются алиасы "X City"
	loc := NormalizeCityCountry("Andorra", "Andorra")

	assert.Equal(t, "Andorra", loc.City)
	assert.Equal(t, "Andorra", loc.Country)
	assert.Equal(t, []string{"Andorra City", "Andorra"}, loc.Aliases)
}

func TestNormalizeCityCountry_CountryNameAsCity(t *testing.T) {
	loc := NormalizeCityCountry("Panama", "Panama")

	// Панама есть в таблице коррекций, срабатывает она
	assert.Equal(t, "Panama City", loc.City)
}

func TestNormalizeCityCountry_RegularCityUntouched(t *testing.T) {
	loc := NormalizeCityCountry("Paris", "France")

	assert.Equal(t, "Paris", loc.City)
	assert.Equal(t, "France", loc.Country)
	assert.Empty(t, loc.Aliases)
}

func TestNormalizeCityCountry_Empty(t *testing.T) {
	loc := NormalizeCityCountry("", "")
	assert.Equal(t, "", loc.City)
	assert.Equal(t, "", loc.Country)
}
