package service

import (
	"context"
	"errors"

	"dreamhome-estimator/internal/currency"
	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/models"
	"dreamhome-estimator/internal/repository"

	"github.com/rs/zerolog"
)

const (
	// CalculatingLabel replaces the trigger label while a request is in flight.
	CalculatingLabel = "⏳ Calculating..."
	// ConnectFailedMessage is shown when the backend cannot be reached or
	// answers with something that is not a prediction.
	ConnectFailedMessage = "Failed to connect to the server."
)

// View is the page the submission mutates: the trigger control, the result
// region with its price display, and blocking alerts.
type View interface {
	ButtonLabel() string
	SetButtonLabel(label string)
	SetButtonDisabled(disabled bool)
	HideResult()
	ShowResult()
	SetPrice(text string)
	Alert(message string)
}

// Predictor interface for dependency injection
type Predictor interface {
	Predict(ctx context.Context, features models.HouseFeatures) (*models.Prediction, error)
}

// Outcome is how a submission ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRejected
	OutcomeConnectionFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeConnectionFailed:
		return "connection_failed"
	}
	return "unknown"
}

// Result describes a finished submission.
type Result struct {
	Outcome  Outcome
	Features models.HouseFeatures
	Price    string
	Message  string
}

// SubmissionService runs the prediction form's submit flow
type SubmissionService struct {
	predictor Predictor
	logger    zerolog.Logger
}

// NewSubmissionService creates a new submission service. Errors that prevent
// a prediction from being shown are written to logger.
func NewSubmissionService(predictor Predictor, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{predictor: predictor, logger: logger}
}

// Submit reads the form, asks the backend for a price and renders the outcome
// into the view. The trigger control is locked for the duration of the call
// and always restored before Submit returns, whatever the outcome.
func (s *SubmissionService) Submit(ctx context.Context, view View, r form.Reader) Result {
	originalLabel := view.ButtonLabel()
	view.SetButtonLabel(CalculatingLabel)
	view.SetButtonDisabled(true)
	view.HideResult()

	defer func() {
		view.SetButtonLabel(originalLabel)
		view.SetButtonDisabled(false)
	}()

	features := form.Features(r)

	prediction, err := s.predictor.Predict(ctx, features)
	if err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			message := "Error: " + statusErr.StatusText
			view.Alert(message)
			return Result{Outcome: OutcomeRejected, Features: features, Message: message}
		}

		s.logger.Error().Err(err).Msg("prediction request failed")
		view.Alert(ConnectFailedMessage)
		return Result{Outcome: OutcomeConnectionFailed, Features: features, Message: ConnectFailedMessage}
	}

	var amount *float64
	if prediction != nil {
		amount = prediction.PredictedPrice
	}
	price := currency.FormatINR(amount)

	view.SetPrice(price)
	view.ShowResult()

	return Result{Outcome: OutcomeSuccess, Features: features, Price: price}
}
