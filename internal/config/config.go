package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 控制 wallet-plugin-mock 进程的监听与夹具加载。
type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	VsockPort       uint32
	FixturePath     string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// DefaultConfig 返回本地测试使用的默认值。
func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":9090",
		LogLevel:        slog.LevelInfo,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfigFromEnv 解析环境变量，未设置或非法的值保留默认。
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	if addr := os.Getenv("WALLET_MOCK_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	// 显式设为空字符串时关闭 gRPC health 监听。
	if addr, ok := os.LookupEnv("WALLET_MOCK_GRPC_ADDR"); ok {
		cfg.GRPCAddr = strings.TrimSpace(addr)
	}
	if v := readUint32("WALLET_MOCK_VSOCK_PORT"); v > 0 {
		cfg.VsockPort = v
	}
	if path := os.Getenv("WALLET_MOCK_FIXTURE"); path != "" {
		cfg.FixturePath = path
	}
	if level, ok := parseLogLevel(os.Getenv("WALLET_MOCK_LOG_LEVEL")); ok {
		cfg.LogLevel = level
	}
	if d := readDuration("WALLET_MOCK_SHUTDOWN_TIMEOUT"); d > 0 {
		cfg.ShutdownTimeout = d
	}
	return cfg
}

func parseLogLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// readUint32 超出 uint32 范围的值与非法输入一样返回 0。
func readUint32(key string) uint32 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func readDuration(key string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
