package main

import (
	"context"
	"fmt"
	"net/http"

	"campusconnect/api"
	"campusconnect/config"
	"campusconnect/database"
	"campusconnect/freeslot"
	"campusconnect/logging"
	"campusconnect/schedule"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := logging.NewLogger(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	window, err := operatingWindow(cfg)
	if err != nil {
		logger.Fatal("invalid operating window", zap.Error(err))
	}

	ctx := context.Background()

	logger.Info("connecting to database")
	db, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("database connect", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("database migrate", zap.Error(err))
	}

	service := api.NewAPI(db, window)
	service.RegisterRoutes()

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("day_start", window.Start.String()),
		zap.String("day_end", window.End.String()))

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), service.Handler()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func operatingWindow(cfg *config.Config) (freeslot.Window, error) {
	start, err := schedule.ParseClock(cfg.DayStart)
	if err != nil {
		return freeslot.Window{}, err
	}
	end, err := schedule.ParseClock(cfg.DayEnd)
	if err != nil {
		return freeslot.Window{}, err
	}
	w := freeslot.Window{Start: start, End: end}
	return w, w.Validate()
}
