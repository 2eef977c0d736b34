package walletapi

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService 是 gRPC health 检查使用的服务名。
const HealthService = "walletplugin.v1.WalletPlugin"

// NewHealthServer 返回已标记为 SERVING 的 health server。
func NewHealthServer() *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(HealthService, healthpb.HealthCheckResponse_SERVING)
	return srv
}
