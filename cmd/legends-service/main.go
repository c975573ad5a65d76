package main

import (
	"fmt"
	"os"

	"github.com/cimar/ecare-legends/internal/config"
	"github.com/cimar/ecare-legends/internal/db"
	"github.com/cimar/ecare-legends/internal/excel"
	httphandler "github.com/cimar/ecare-legends/internal/http"
	"github.com/cimar/ecare-legends/internal/imagestore"
	"github.com/cimar/ecare-legends/internal/logger"
	"github.com/cimar/ecare-legends/internal/pdf"
	"github.com/cimar/ecare-legends/internal/repository"
	"github.com/cimar/ecare-legends/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	legendRepo := repository.NewLegendRepository(database)
	images := imagestore.New(cfg.Files.BaseURL, cfg.Files.Timeout, log)

	legendService, err := service.NewLegendService(
		legendRepo,
		images,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init legend service")
	}

	handler := httphandler.NewHandler(legendService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting legends service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
