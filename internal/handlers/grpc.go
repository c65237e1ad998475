package handlers

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ComputeServiceName имя сервиса в grpc.health.v1
const ComputeServiceName = "control.ComputeService"

// HealthReporter gRPC health-сервис. Статус compute-сервиса обновляется
// периодической проверкой журнала (если он включён).
type HealthReporter struct {
	server *health.Server
	check  func() error
}

func NewHealthReporter(check func() error) *HealthReporter {
	hr := &HealthReporter{
		server: health.NewServer(),
		check:  check,
	}
	hr.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hr.server.SetServingStatus(ComputeServiceName, healthpb.HealthCheckResponse_SERVING)
	return hr
}

// Register регистрирует health-сервис на gRPC сервере
func (hr *HealthReporter) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, hr.server)
}

// Refresh один проход проверки
func (hr *HealthReporter) Refresh() {
	if hr.check == nil {
		return
	}
	status := healthpb.HealthCheckResponse_SERVING
	if err := hr.check(); err != nil {
		slog.Warn("Health check failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	hr.server.SetServingStatus(ComputeServiceName, status)
}

// Run обновляет статус до отмены ctx
func (hr *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hr.Refresh()
		}
	}
}

// Shutdown переводит все сервисы в NOT_SERVING
func (hr *HealthReporter) Shutdown() {
	hr.server.Shutdown()
}
