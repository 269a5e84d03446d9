package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/f1dash/assets"
	"github.com/padraicbc/f1dash/config"
	"github.com/padraicbc/f1dash/db"
	"github.com/padraicbc/f1dash/handlers"
	applog "github.com/padraicbc/f1dash/logger"
	"github.com/padraicbc/f1dash/season"
	"github.com/padraicbc/f1dash/web"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	ds, err := db.Dataset(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("load dataset failed", zap.String("source", cfg.DatasetSource), zap.Error(err))
	}
	logger.Info("dataset loaded",
		zap.String("source", cfg.DatasetSource),
		zap.Ints("seasons", ds.Seasons()),
		zap.Int("races", len(ds.Races())),
	)

	catalog := assets.Default()
	if cfg.AssetsFile != "" {
		if catalog, err = assets.LoadFile(cfg.AssetsFile); err != nil {
			logger.Fatal("load assets failed", zap.String("file", cfg.AssetsFile), zap.Error(err))
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("parse templates failed", zap.Error(err))
	}

	svc := season.NewService(ds, season.WithAssets(catalog))
	h := handlers.New(svc, cfg.SupportedSeasons, cfg.DefaultSeason)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	h.Register(e)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	logger.Info("starting server", zap.String("mode", "tls"), zap.Strings("domains", cfg.TLSDomains))
	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
