package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/repository"
	"dreamhome-estimator/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTerminalView_Success(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predicted_price": 4500000}`))
	}))
	defer backend.Close()

	svc := service.NewSubmissionService(repository.NewPredictorRepository(backend.URL, nil), zerolog.Nop())

	var out, errOut bytes.Buffer
	view := newTerminalView(&out, &errOut, false)

	result := svc.Submit(context.Background(), view, form.DefaultValues)

	assert.Equal(t, service.OutcomeSuccess, result.Outcome)
	assert.Equal(t, "Estimated Property Value: ₹45,00,000.00\n", out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, "estimate", view.ButtonLabel())
	assert.False(t, view.disabled)
}

func TestTerminalView_InteractiveSubmit(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedOut    string
		expectedErrOut string
	}{
		{
			name: "price replaces the progress line",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"predicted_price": 4500000}`))
			},
			expectedOut: service.CalculatingLabel + "\r\033[K" + "Estimated Property Value: ₹45,00,000.00\n",
		},
		{
			name: "alert clears the progress line",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedOut:    service.CalculatingLabel + "\r\033[K",
			expectedErrOut: "Error: Internal Server Error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(tt.handler)
			defer backend.Close()

			svc := service.NewSubmissionService(repository.NewPredictorRepository(backend.URL, nil), zerolog.Nop())

			var out, errOut bytes.Buffer
			view := newTerminalView(&out, &errOut, true)

			svc.Submit(context.Background(), view, form.DefaultValues)

			assert.Equal(t, tt.expectedOut, out.String())
			assert.Equal(t, tt.expectedErrOut, errOut.String())
			assert.Equal(t, "estimate", view.ButtonLabel())
		})
	}
}

func TestTerminalView_AlertGoesToErrorOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	view := newTerminalView(&out, &errOut, false)

	view.Alert(service.ConnectFailedMessage)

	assert.Empty(t, out.String())
	assert.Equal(t, service.ConnectFailedMessage+"\n", errOut.String())
}
