package models

// HouseFeatures is the payload sent to the prediction backend. Field order and
// JSON keys match what the backend expects. A nil field is a value that could
// not be parsed from the form; it is still sent, encoded as null.
type HouseFeatures struct {
	SquareFeet       *int64   `json:"Square_Feet"`
	Bedrooms         *int64   `json:"Bedrooms"`
	Bathrooms        *int64   `json:"Bathrooms"`
	YearBuilt        *int64   `json:"Year_Built"`
	LocationScore    *int64   `json:"Location_Score"`
	DistanceToCityKm *float64 `json:"Distance_to_City_km"`
}

// Prediction is the backend's answer for a successful request. A nil price
// means the backend's object had no predicted_price.
type Prediction struct {
	PredictedPrice *float64 `json:"predicted_price"`
}
