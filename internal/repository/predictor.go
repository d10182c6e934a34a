package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"dreamhome-estimator/internal/models"
)

// PredictPath is the backend endpoint, relative to the backend origin.
const PredictPath = "/predict"

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("repository: prediction backend returned %d %s", e.StatusCode, e.StatusText)
}

// PredictorRepository talks to the prediction backend over HTTP
type PredictorRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewPredictorRepository creates a client for the backend at baseURL
func NewPredictorRepository(baseURL string, httpClient *http.Client) *PredictorRepository {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PredictorRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Predict sends one POST /predict with the features as JSON. It does not retry.
func (r *PredictorRepository) Predict(ctx context.Context, features models.HouseFeatures) (*models.Prediction, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+PredictPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to reach prediction backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	prediction, err := decodePrediction(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to decode prediction: %w", err)
	}

	return prediction, nil
}

// decodePrediction reads a body that must hold exactly one JSON object.
// An absent predicted_price stays nil, an explicit null reads as 0 and any
// other non-number reads as NaN.
func decodePrediction(body io.Reader) (*models.Prediction, error) {
	dec := json.NewDecoder(body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("response body is null")
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after response object")
	}

	raw, ok := fields["predicted_price"]
	if !ok {
		return &models.Prediction{}, nil
	}

	var price float64
	switch {
	case bytes.Equal(bytes.TrimSpace(raw), []byte("null")):
		price = 0
	case json.Unmarshal(raw, &price) != nil:
		price = math.NaN()
	}

	return &models.Prediction{PredictedPrice: &price}, nil
}

// statusText extracts the reason phrase from the status line, falling back
// to the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
