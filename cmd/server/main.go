package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"control-system/configs"
	"control-system/internal/database"
	"control-system/internal/handlers"
	"control-system/internal/middleware"
	"control-system/internal/mqtt_client"
	"control-system/internal/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

func main() {
	cfg := configs.LoadConfig()
	configs.InitLogger(cfg.App.Env, cfg.App.LogLevel)
	slog.Info("Starting control-system", "version", "1.0.0")
	slog.Info("Configuration loaded successfully",
		"http_port", cfg.App.Port,
		"grpc_port", cfg.App.GRPCPort,
		"gin_mode", cfg.App.GinMode,
		"compute_api", cfg.Compute.URL,
		"history", cfg.Database.Enabled,
		"mqtt", cfg.MQTT.Broker != "",
	)

	gin.SetMode(cfg.App.GinMode)

	client := services.NewComputeClient(cfg.Compute.URL, cfg.Compute.Timeout)
	submissions := services.NewSubmissionService(client)

	// Журнал отправок (опционально)
	var (
		db          *gorm.DB
		history     handlers.HistoryReader
		healthCheck func() error
	)
	if cfg.Database.Enabled {
		var err error
		db, err = database.InitDatabase(cfg.Database, cfg.App.LogLevel)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		if err := database.RunMigrations(db); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}

		historyService := services.NewHistoryService(db)
		submissions.SetRecorder(historyService)
		history = historyService
		healthCheck = func() error { return database.HealthCheck(db) }
	}

	// Публикация результатов в MQTT (опционально)
	var publisher *mqtt_client.Publisher
	if cfg.MQTT.Broker != "" {
		var err error
		publisher, err = mqtt_client.NewPublisher(cfg.MQTT)
		if err != nil {
			slog.Warn("MQTT publisher disabled", "broker", cfg.MQTT.Broker, "error", err)
		} else {
			submissions.SetPublisher(publisher)
		}
	}

	jwtService := middleware.NewJWTService(cfg.Auth.JWTSecret)

	server := handlers.NewServer(
		handlers.NewWebHandler(submissions),
		handlers.NewAPIHandler(submissions, history, healthCheck),
		jwtService,
		cfg.App.CORSOrigins,
	)

	httpServer := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      server.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout(cfg.Compute.Timeout),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.App.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// gRPC health
	healthReporter := handlers.NewHealthReporter(healthCheck)
	grpcServer := grpc.NewServer()
	healthReporter.Register(grpcServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go healthReporter.Run(ctx, 15*time.Second)

	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.App.GRPCPort)
		if err != nil {
			slog.Error("Failed to listen gRPC", "port", cfg.App.GRPCPort, "error", err)
			os.Exit(1)
		}
		slog.Info("Starting gRPC server", "port", cfg.App.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server stopped", "error", err)
		}
	}()

	slog.Info("Server started successfully", "port", cfg.App.Port)

	waitForShutdown(httpServer)

	// Остановка компонентов в обратном порядке
	cancel()
	healthReporter.Shutdown()
	grpcServer.GracefulStop()
	if publisher != nil {
		publisher.Close()
	}
	if db != nil {
		if err := database.CloseDatabase(db); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}

	slog.Info("Service stopped")
}

// writeTimeout ответ формы пишется только после ответа сервиса расчёта
func writeTimeout(computeTimeout time.Duration) time.Duration {
	if computeTimeout <= 0 {
		return 0
	}
	return computeTimeout + 15*time.Second
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server gracefully stopped")
}
