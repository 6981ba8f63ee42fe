package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-agent-go/internal/config"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-agent-go/internal/domain/tracking"
	"github.com/cmlabs-hris/attendance-agent-go/internal/gateway/device"
	"github.com/cmlabs-hris/attendance-agent-go/internal/gateway/hris"
	appHTTP "github.com/cmlabs-hris/attendance-agent-go/internal/handler/http"
	locationService "github.com/cmlabs-hris/attendance-agent-go/internal/service/location"
	punchService "github.com/cmlabs-hris/attendance-agent-go/internal/service/punch"
	trackerService "github.com/cmlabs-hris/attendance-agent-go/internal/service/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	sess := session.New(cfg.HRIS.Token, session.Employee{ID: cfg.HRIS.EmployeeID})
	defer sess.Clear()

	source := device.NewStaticSource(cfg.Location.StaticLatitude, cfg.Location.StaticLongitude)
	provider := locationService.NewProvider(source, locationService.DefaultTiers(), locationService.DefaultWatchOptions())

	hrisClient := hris.NewClient(cfg.HRIS.BaseURL, &http.Client{Timeout: 30 * time.Second}, sess)
	punchSvc := punchService.NewService(hrisClient, provider, cfg.Timezone(), cfg.Location.DefaultRadiusMeters)

	ctx := context.Background()

	var trackerSvc *trackerService.Service
	if cfg.Tracking.Endpoint != "" {
		trackingClient := hris.NewTrackingClient(cfg.Tracking.Endpoint, cfg.Tracking.Key, nil)
		trackerSvc = trackerService.NewService(provider, trackingClient, nil, trackerService.Options{
			Interval: cfg.Tracking.Interval,
			Device: tracking.DeviceInfo{
				Platform: cfg.Device.Platform,
				Version:  cfg.Device.Version,
				DeviceID: cfg.Device.DeviceID,
			},
		})
		if err := trackerSvc.Start(ctx); err != nil {
			slog.Error("Failed to start background tracker", "error", err)
			os.Exit(1)
		}
		defer trackerSvc.Stop(ctx)
	} else {
		slog.Info("Tracking endpoint not configured, tracker disabled")
	}

	agentHandler := appHTTP.NewAgentHandler(punchSvc, trackerSvc, provider, cfg.HRIS.EmployeeID)
	router := appHTTP.NewRouter(agentHandler, cfg.App.Env)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Diagnostics server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Diagnostics server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Diagnostics server shutdown failed", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
