package pricing

import (
	"testing"

	"cleanhurghada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePriceCoversFullMatrix(t *testing.T) {
	expected := map[models.PropertyType]map[models.CleaningType]int{
		models.PropertyStudio: {
			models.CleaningStandard:   700,
			models.CleaningDeep:       1000,
			models.CleaningAirbnb:     1000,
			models.CleaningRenovation: 1500,
		},
		models.PropertyOneBed: {
			models.CleaningStandard:   1000,
			models.CleaningDeep:       1200,
			models.CleaningAirbnb:     1500,
			models.CleaningRenovation: 2000,
		},
		models.PropertyTwoBed: {
			models.CleaningStandard:   1200,
			models.CleaningDeep:       1500,
			models.CleaningAirbnb:     2000,
			models.CleaningRenovation: 2500,
		},
		models.PropertyVilla: {
			models.CleaningStandard:   1500,
			models.CleaningDeep:       2500,
			models.CleaningAirbnb:     3000,
			models.CleaningRenovation: 5000,
		},
	}

	for _, property := range models.PropertyTypes() {
		for _, cleaning := range models.CleaningTypes() {
			price, err := BasePrice(property, cleaning)
			require.NoError(t, err, "lookup must be total over the enums")
			assert.Equal(t, expected[property][cleaning], price, "%s / %s", property, cleaning)
		}
	}
}

func TestBasePriceRejectsUnknownValues(t *testing.T) {
	// Unknown enum values are client input errors, carried as a typed
	// validation error so the HTTP layer maps them to 400.
	var vErr *ValidationError

	_, err := BasePrice("Castle", models.CleaningStandard)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "property type", vErr.Field)

	_, err = BasePrice(models.PropertyStudio, "Dry Clean")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cleaning type", vErr.Field)
}

func TestFinalPriceAppliesServiceFee(t *testing.T) {
	cases := map[int]int{
		0:    0,
		1000: 1150,
		1500: 1725,
		700:  805,
		2500: 2875,
		// half-up rounding: 1234 * 1.15 = 1419.1
		1234: 1419,
	}
	for base, want := range cases {
		assert.Equal(t, want, FinalPrice(base), "base %d", base)
	}
}

func TestQuoteSquareMetersAreDecorative(t *testing.T) {
	with, err := Quote(models.PropertyOneBed, models.CleaningDeep, 90, "El Gouna")
	require.NoError(t, err)
	without, err := Quote(models.PropertyOneBed, models.CleaningDeep, 0, "El Gouna")
	require.NoError(t, err)

	assert.Equal(t, without.Price, with.Price, "square meters must not change the price")
	assert.Contains(t, with.Details, "90 m²")
	assert.NotContains(t, without.Details, "m²")
	assert.Equal(t, "El Gouna", with.Area)
}

func TestQuoteDefaultsArea(t *testing.T) {
	q, err := Quote(models.PropertyStudio, models.CleaningStandard, 0, "")
	require.NoError(t, err)
	assert.Equal(t, Areas[0], q.Area)
}
