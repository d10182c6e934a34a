package main

import (
	"net/http"

	"dreamhome-estimator/internal/config"
	"dreamhome-estimator/internal/handler"
	"dreamhome-estimator/internal/repository"
	"dreamhome-estimator/internal/service"
	"dreamhome-estimator/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	logger := log.Level(level)

	// Initialize layers
	predictor := repository.NewPredictorRepository(config.PredictorURL, &http.Client{
		Timeout: config.PredictorTimeout,
	})

	submissionService := service.NewSubmissionService(predictor, logger)

	estimateHandler := handler.NewEstimateHandler(submissionService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(logger))
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", estimateHandler.Form)
	r.POST("/", estimateHandler.Submit)

	logger.Info().
		Str("address", config.ServerAddress).
		Str("predictor", config.PredictorURL).
		Msg("starting web front end")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
