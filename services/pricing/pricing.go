// Package pricing holds the static price matrix and quote math for the
// Hurghada cleaning services.
package pricing

import (
	"fmt"
	"math"

	"cleanhurghada/models"
)

// Currency is the only currency the business charges in.
const Currency = "EGP"

// ServiceFeeRate is the surcharge applied at payment review, not during quoting.
const ServiceFeeRate = 0.15

// Areas lists the Hurghada districts offered in the booking form. The last
// entry is the sentinel that switches the form to free-text input.
var Areas = []string{
	"El Kawther",
	"El Mamsha",
	"Sheraton Road",
	"Arabia / Arabella",
	"El Helal",
	"Intercontinental",
	"Magawish",
	"Sahl Hasheesh",
	"Makadi Bay",
	"El Gouna",
	"Soma Bay",
	models.AreaOther,
}

// matrix is total over PropertyTypes x CleaningTypes; lookups cannot fail for
// valid enum values. Prices in whole EGP.
var matrix = map[models.PropertyType]map[models.CleaningType]int{
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
		models.CleaningStandard:   1500, // starts from
		models.CleaningDeep:       2500,
		models.CleaningAirbnb:     3000,
		models.CleaningRenovation: 5000,
	},
}

// ValidationError marks calculator input naming an enum value outside the
// matrix. It is client input, not a server fault.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// BasePrice looks up the tabled price for a property/cleaning pair.
func BasePrice(property models.PropertyType, cleaning models.CleaningType) (int, error) {
	row, ok := matrix[property]
	if !ok {
		return 0, &ValidationError{Field: "property type", Value: string(property)}
	}
	price, ok := row[cleaning]
	if !ok {
		return 0, &ValidationError{Field: "cleaning type", Value: string(cleaning)}
	}
	return price, nil
}

// Quote builds the calculator output. The square-meter figure is decorative:
// it shows up in the service label but never changes the price.
func Quote(property models.PropertyType, cleaning models.CleaningType, sqm int, area string) (models.Quote, error) {
	price, err := BasePrice(property, cleaning)
	if err != nil {
		return models.Quote{}, err
	}
	details := fmt.Sprintf("%s - %s", property, cleaning)
	if sqm > 0 {
		details = fmt.Sprintf("%s (%d m²)", details, sqm)
	}
	if area == "" {
		area = Areas[0]
	}
	return models.Quote{Price: price, Details: details, Area: area}, nil
}

// FinalPrice applies the 15% service fee, rounded half-up to whole EGP.
func FinalPrice(basePrice int) int {
	return int(math.Round(float64(basePrice) * (1 + ServiceFeeRate)))
}
