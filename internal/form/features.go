package form

import "dreamhome-estimator/internal/models"

// Element ids of the prediction form.
const (
	FormID         = "prediction-form"
	ButtonID       = "btn-predict"
	ResultID       = "result"
	PriceDisplayID = "price-display"

	SquareFeetID    = "sqft"
	BedroomsID      = "bedrooms"
	BathroomsID     = "bathrooms"
	YearBuiltID     = "year"
	LocationScoreID = "loc_score"
	DistanceID      = "distance"
)

// FieldIDs lists the input ids in payload order.
var FieldIDs = []string{
	SquareFeetID,
	BedroomsID,
	BathroomsID,
	YearBuiltID,
	LocationScoreID,
	DistanceID,
}

// DefaultValues pre-fills the form on first load.
var DefaultValues = Values{
	SquareFeetID:    "1500",
	BedroomsID:      "3",
	BathroomsID:     "2",
	YearBuiltID:     "2015",
	LocationScoreID: "7",
	DistanceID:      "12.5",
}

// Reader gives access to the raw text of a form input by its element id.
type Reader interface {
	Value(id string) string
}

// Values is a Reader backed by a map. Missing ids read as empty strings.
type Values map[string]string

func (v Values) Value(id string) string {
	return v[id]
}

// Features builds the prediction payload from the form. Nothing is validated:
// fields that do not parse are left nil.
func Features(r Reader) models.HouseFeatures {
	return models.HouseFeatures{
		SquareFeet:       ParseInt(r.Value(SquareFeetID)),
		Bedrooms:         ParseInt(r.Value(BedroomsID)),
		Bathrooms:        ParseInt(r.Value(BathroomsID)),
		YearBuilt:        ParseInt(r.Value(YearBuiltID)),
		LocationScore:    ParseInt(r.Value(LocationScoreID)),
		DistanceToCityKm: ParseFloat(r.Value(DistanceID)),
	}
}
