package models

// PropertyType enumerates the property sizes the calculator knows about.
type PropertyType string

const (
	PropertyStudio PropertyType = "Studio"
	PropertyOneBed PropertyType = "1 Bedroom"
	PropertyTwoBed PropertyType = "2 Bedrooms"
	PropertyVilla  PropertyType = "Villa / 3+ Beds"
)

// CleaningType enumerates the offered cleaning services.
type CleaningType string

const (
	CleaningStandard   CleaningType = "Standard"
	CleaningDeep       CleaningType = "Deep Clean"
	CleaningAirbnb     CleaningType = "Airbnb Turnover"
	CleaningRenovation CleaningType = "After Renovation"
)

// PropertyTypes lists every valid property type, in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertyStudio, PropertyOneBed, PropertyTwoBed, PropertyVilla}
}

// CleaningTypes lists every valid cleaning type, in display order.
func CleaningTypes() []CleaningType {
	return []CleaningType{CleaningStandard, CleaningDeep, CleaningAirbnb, CleaningRenovation}
}

// Quote is the calculator's output: a tabled price in EGP, a human-readable
// service label, and the chosen service area.
type Quote struct {
	Price   int    `json:"price"`
	Details string `json:"details"`
	Area    string `json:"area"`
}
