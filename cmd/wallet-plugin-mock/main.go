package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	walletapi "github.com/aegis-sign/wallet-plugin-mock/internal/api"
	"github.com/aegis-sign/wallet-plugin-mock/internal/config"
	"github.com/aegis-sign/wallet-plugin-mock/pkg/mockwallet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.LoadConfigFromEnv()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	plugin, err := buildPlugin(cfg, logger)
	if err != nil {
		logger.Error("failed to build mock wallet", "error", err)
		os.Exit(1)
	}

	// HTTP server wiring
	mux := http.NewServeMux()
	walletapi.NewHTTPHandler(plugin, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	httpSrv := &http.Server{Handler: mux}
	httpLis, err := walletapi.Listen(cfg.HTTPAddr, cfg.VsockPort)
	if err != nil {
		logger.Error("failed to listen for HTTP", "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("HTTP server listening", "addr", httpLis.Addr().String())
		if err := httpSrv.Serve(httpLis); err != nil && err != http.ErrServerClosed {
			logger.Error("http server closed unexpectedly", "error", err)
			stop()
		}
	}()

	// gRPC health wiring
	var grpcSrv *grpc.Server
	healthSrv := walletapi.NewHealthServer()
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			logger.Error("failed to listen for gRPC", "error", err)
			os.Exit(1)
		}
		grpcSrv = grpc.NewServer()
		healthpb.RegisterHealthServer(grpcSrv, healthSrv)
		go func() {
			logger.Info("gRPC health listening", "addr", cfg.GRPCAddr)
			if err := grpcSrv.Serve(lis); err != nil {
				logger.Error("grpc server closed unexpectedly", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")
	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
}

func buildPlugin(cfg config.Config, logger *slog.Logger) (*mockwallet.Plugin, error) {
	opts := &mockwallet.Options{}
	if cfg.FixturePath != "" {
		loaded, err := mockwallet.LoadFixture(cfg.FixturePath)
		if err != nil {
			return nil, err
		}
		opts = loaded
		logger.Info("loaded wallet fixture", "path", cfg.FixturePath)
	}
	opts.Logger = logger
	opts.Metrics = mockwallet.NewMetrics(prometheus.DefaultRegisterer)
	return mockwallet.New(opts), nil
}
