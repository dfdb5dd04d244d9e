package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sheetboard/api"
	"sheetboard/internal/config"
	"sheetboard/source"
)

func main() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := logConfig.Build()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Invalid configuration", zap.Error(err))
	}

	src, err := buildSource(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialise record source", zap.Error(err))
	}
	zap.L().Info("Record source ready",
		zap.String("source", cfg.SourceKind),
		zap.Bool("readOnly", src.ReadOnly()))

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	handler := &api.Handler{Source: src}
	handler.Register(router)

	router.StaticFile("/", "static/index.html")
	router.Static("/static", "static")
	router.GET("/favicon.ico", func(c *gin.Context) {
		if _, err := os.Stat("static/favicon.ico"); err != nil {
			// A tiny empty response avoids 404 spam in logs.
			c.Status(http.StatusNoContent)
			return
		}
		c.File("static/favicon.ico")
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors.Default().Handler(router),
	}

	zap.L().Info("Starting server", zap.String("port", cfg.Port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	zap.L().Info("Shutdown initiated", zap.String("reason", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Error shutting down server", zap.Error(err))
	} else {
		zap.L().Info("HTTP server shut down gracefully.")
	}
}

func buildSource(cfg config.Config) (source.Source, error) {
	switch cfg.SourceKind {
	case config.SourceScript:
		return source.NewScriptSource(cfg.ScriptURL), nil
	case config.SourceSheets:
		return source.NewSheetsSource(context.Background(), cfg.Credentials, cfg.SpreadsheetID, cfg.Worksheet)
	default:
		return source.NewCSVSource(cfg.CSVURL), nil
	}
}
