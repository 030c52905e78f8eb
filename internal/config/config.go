package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Env     string
	Server  ServerConfig
	Payment PaymentConfig
	Session SessionConfig
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PaymentConfig は模擬決済の進捗設定
// 既定では100msごとに5%進み、2秒で完了する
type PaymentConfig struct {
	TickInterval time.Duration
	ProgressStep int
}

// SessionConfig はセッション回収の設定
type SessionConfig struct {
	IdleTTL        time.Duration
	ReaperInterval time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Payment: PaymentConfig{
			TickInterval: getDurationEnv("PAYMENT_TICK_INTERVAL", 100*time.Millisecond),
			ProgressStep: getIntEnv("PAYMENT_PROGRESS_STEP", 5),
		},
		Session: SessionConfig{
			IdleTTL:        getDurationEnv("SESSION_IDLE_TTL", 15*time.Minute),
			ReaperInterval: getDurationEnv("SESSION_REAPER_INTERVAL", time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
