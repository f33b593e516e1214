// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and the session
// capacity bounds.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CartCapacity    int
	OrderCapacity   int
	AuditLogPath    string
	LogLevel        string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		CartCapacity:    atoienv("CART_CAPACITY", 10),
		OrderCapacity:   atoienv("ORDER_CAPACITY", 10),
		AuditLogPath:    getenv("AUDIT_LOG_PATH", "orders.log"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
}
