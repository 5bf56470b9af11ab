package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unparseable values fall back to the defaults
	for _, key := range []string{"KAFKA_BROKERS", "RATE_LIMIT_RPS", "HTTP_READ_TIMEOUT"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	if cfg.AppEnv != "production" {
		t.Errorf("AppEnv = %s", cfg.AppEnv)
	}
	if cfg.Logger.Encoding != "json" || cfg.Logger.Development {
		t.Errorf("production logger = %+v", cfg.Logger)
	}
	if cfg.RateLimit.RPS != 0 {
		t.Errorf("RPS = %v, want disabled", cfg.RateLimit.RPS)
	}
	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.HTTP.ReadTimeout)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("Brokers = %v, want none", cfg.Kafka.Brokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_CONN_MAX_LIFETIME", "60")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	cfg := Load()
	if !cfg.Logger.Development || cfg.Logger.Encoding != "console" {
		t.Errorf("development logger = %+v", cfg.Logger)
	}
	if cfg.DB.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v", cfg.DB.ConnMaxLifetime)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.RateLimit.RPS != 2.5 {
		t.Errorf("RPS = %v", cfg.RateLimit.RPS)
	}
	if cfg.HTTP.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v", cfg.HTTP.WriteTimeout)
	}
}
