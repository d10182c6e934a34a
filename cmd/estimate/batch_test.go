package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, view service.View, r form.Reader) service.Result {
	args := m.Called(ctx, view, r)
	return args.Get(0).(service.Result)
}

func TestParseCSV(t *testing.T) {
	input := "Square_Feet,Bedrooms,Bathrooms,Year_Built,Location_Score,Distance_to_City_km,Price_INR\n" +
		"1500,3,2,2015,7,12.5,9000000\n" +
		"2400,4,3,2020,9,3.2\n"

	rows, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, form.Values{
		form.SquareFeetID:    "1500",
		form.BedroomsID:      "3",
		form.BathroomsID:     "2",
		form.YearBuiltID:     "2015",
		form.LocationScoreID: "7",
		form.DistanceID:      "12.5",
	}, rows[0])
	assert.Equal(t, "3.2", rows[1][form.DistanceID])
}

func TestParseCSV_ColumnOrderDoesNotMatter(t *testing.T) {
	input := "Distance_to_City_km,Year_Built,Square_Feet,Bedrooms,Bathrooms,Location_Score\n" +
		"8,1999,900,2,1,4\n"

	rows, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "8", rows[0][form.DistanceID])
	assert.Equal(t, "900", rows[0][form.SquareFeetID])
}

func TestParseCSV_ShortRowLeavesFieldsEmpty(t *testing.T) {
	input := "Square_Feet,Bedrooms,Bathrooms,Year_Built,Location_Score,Distance_to_City_km\n" +
		"1500,3\n"

	rows, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "3", rows[0][form.BedroomsID])
	assert.Equal(t, "", rows[0][form.DistanceID])
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty file", input: ""},
		{name: "missing column", input: "Square_Feet,Bedrooms\n1500,3\n"},
		{name: "bare quote", input: "Square_Feet,Bedrooms,Bathrooms,Year_Built,Location_Score,Distance_to_City_km\n15\"00,3,2,2015,7,12.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestRunBatch(t *testing.T) {
	rows := []form.Values{
		{form.SquareFeetID: "1500"},
		{form.SquareFeetID: "2000"},
		{form.SquareFeetID: "2500"},
	}

	svc := new(mockSubmitter)
	svc.On("Submit", mock.Anything, mock.Anything, rows[0]).
		Return(service.Result{Outcome: service.OutcomeSuccess, Price: "₹45,00,000.00"})
	svc.On("Submit", mock.Anything, mock.Anything, rows[1]).
		Return(service.Result{Outcome: service.OutcomeRejected, Message: "Error: Internal Server Error"})
	svc.On("Submit", mock.Anything, mock.Anything, rows[2]).
		Return(service.Result{Outcome: service.OutcomeConnectionFailed, Message: service.ConnectFailedMessage})

	var out bytes.Buffer
	summary := runBatch(context.Background(), svc, rows, &out)

	assert.Equal(t, batchSummary{Total: 3, Succeeded: 1, Rejected: 1, Failed: 1}, summary)
	assert.False(t, summary.allSucceeded())
	assert.Equal(t, "row 1: ₹45,00,000.00\n"+
		"row 2: Error: Internal Server Error\n"+
		"row 3: Failed to connect to the server.\n", out.String())
	svc.AssertExpectations(t)
}

func TestRunBatch_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := new(mockSubmitter)

	var out bytes.Buffer
	summary := runBatch(ctx, svc, []form.Values{{}, {}}, &out)

	assert.Equal(t, batchSummary{Total: 2, Skipped: 2}, summary)
	assert.False(t, summary.allSucceeded())
	assert.Empty(t, out.String())
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunBatch_InterruptedAfterSuccessfulRowsIsIncomplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rows := []form.Values{
		{form.SquareFeetID: "1500"},
		{form.SquareFeetID: "2000"},
		{form.SquareFeetID: "2500"},
	}

	svc := new(mockSubmitter)
	svc.On("Submit", mock.Anything, mock.Anything, rows[0]).
		Run(func(mock.Arguments) { cancel() }).
		Return(service.Result{Outcome: service.OutcomeSuccess, Price: "₹45,00,000.00"})

	var out bytes.Buffer
	summary := runBatch(ctx, svc, rows, &out)

	assert.Equal(t, batchSummary{Total: 3, Succeeded: 1, Skipped: 2}, summary)
	assert.False(t, summary.allSucceeded())
	assert.Equal(t, "row 1: ₹45,00,000.00\n", out.String())
	svc.AssertExpectations(t)
}

func TestBatchSummary_AllSucceeded(t *testing.T) {
	assert.True(t, batchSummary{Total: 2, Succeeded: 2}.allSucceeded())
	assert.True(t, batchSummary{}.allSucceeded())
	assert.False(t, batchSummary{Total: 2, Succeeded: 1, Skipped: 1}.allSucceeded())
}

func TestRunBatchFile_MissingFile(t *testing.T) {
	_, err := runBatchFile(context.Background(), new(mockSubmitter), "does-not-exist.csv", &bytes.Buffer{})
	assert.Error(t, err)
}
