package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"dreamhome-estimator/internal/config"
	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/repository"
	"dreamhome-estimator/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	configDir := flag.String("config", "configs", "Directory containing app.env")
	file := flag.String("file", "", "CSV file with one house per row; header names follow the payload keys")
	sqft := flag.String("sqft", form.DefaultValues[form.SquareFeetID], "Square feet (area)")
	bedrooms := flag.String("bedrooms", form.DefaultValues[form.BedroomsID], "Number of bedrooms")
	bathrooms := flag.String("bathrooms", form.DefaultValues[form.BathroomsID], "Number of bathrooms")
	year := flag.String("year", form.DefaultValues[form.YearBuiltID], "Year built")
	locScore := flag.String("loc-score", form.DefaultValues[form.LocationScoreID], "Location score (1 = poor, 10 = premium)")
	distance := flag.String("distance", form.DefaultValues[form.DistanceID], "Distance to city center in km")
	flag.Parse()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	predictor := repository.NewPredictorRepository(cfg.PredictorURL, &http.Client{
		Timeout: cfg.PredictorTimeout,
	})
	svc := service.NewSubmissionService(predictor, logger)

	if *file != "" {
		summary, err := runBatchFile(ctx, svc, *file, os.Stdout)
		if err != nil {
			logger.Error().Err(err).Str("file", *file).Msg("batch estimate failed")
			stop()
			os.Exit(1)
		}
		fmt.Printf("%d estimated, %d rejected, %d failed, %d skipped\n",
			summary.Succeeded, summary.Rejected, summary.Failed, summary.Skipped)
		if !summary.allSucceeded() {
			stop()
			os.Exit(1)
		}
		return
	}

	values := form.Values{
		form.SquareFeetID:    *sqft,
		form.BedroomsID:      *bedrooms,
		form.BathroomsID:     *bathrooms,
		form.YearBuiltID:     *year,
		form.LocationScoreID: *locScore,
		form.DistanceID:      *distance,
	}

	result := svc.Submit(ctx, newTerminalView(os.Stdout, os.Stderr, interactive), values)
	if result.Outcome != service.OutcomeSuccess {
		stop()
		os.Exit(1)
	}
}
