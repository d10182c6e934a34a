package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/service"
)

// columnIDs maps CSV header names, which follow the payload keys, to form
// element ids.
var columnIDs = map[string]string{
	"Square_Feet":         form.SquareFeetID,
	"Bedrooms":            form.BedroomsID,
	"Bathrooms":           form.BathroomsID,
	"Year_Built":          form.YearBuiltID,
	"Location_Score":      form.LocationScoreID,
	"Distance_to_City_km": form.DistanceID,
}

type submitter interface {
	Submit(context.Context, service.View, form.Reader) service.Result
}

func parseCSV(r io.Reader) ([]form.Values, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[int]string, len(columnIDs))
	for i, name := range header {
		if id, ok := columnIDs[strings.TrimSpace(name)]; ok {
			columns[i] = id
		}
	}
	if len(columns) != len(columnIDs) {
		return nil, fmt.Errorf("header must contain the columns %s", strings.Join(columnNames(), ", "))
	}

	var rows []form.Values
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		values := make(form.Values, len(columns))
		for i, id := range columns {
			if i < len(record) {
				values[id] = record[i]
			}
		}
		rows = append(rows, values)
	}

	return rows, nil
}

func columnNames() []string {
	return []string{"Square_Feet", "Bedrooms", "Bathrooms", "Year_Built", "Location_Score", "Distance_to_City_km"}
}

// batchSummary counts row outcomes.
type batchSummary struct {
	Total     int
	Succeeded int
	Rejected  int
	Failed    int
	Skipped   int
}

// allSucceeded reports whether every row of the file got a price.
func (s batchSummary) allSucceeded() bool {
	return s.Succeeded == s.Total
}

// runBatch submits every row in order and writes one line per row.
func runBatch(ctx context.Context, svc submitter, rows []form.Values, out io.Writer) batchSummary {
	summary := batchSummary{Total: len(rows)}
	for i, row := range rows {
		if ctx.Err() != nil {
			summary.Skipped = len(rows) - i
			break
		}

		result := svc.Submit(ctx, &batchView{label: "estimate"}, row)

		switch result.Outcome {
		case service.OutcomeSuccess:
			summary.Succeeded++
			fmt.Fprintf(out, "row %d: %s\n", i+1, result.Price)
		case service.OutcomeRejected:
			summary.Rejected++
			fmt.Fprintf(out, "row %d: %s\n", i+1, result.Message)
		default:
			summary.Failed++
			fmt.Fprintf(out, "row %d: %s\n", i+1, result.Message)
		}
	}
	return summary
}

func runBatchFile(ctx context.Context, svc submitter, path string, out io.Writer) (batchSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return batchSummary{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		return batchSummary{}, err
	}

	return runBatch(ctx, svc, rows, out), nil
}
