package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddress = "0.0.0.0:8000"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultCatalogTTL  = 300
)

type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	GRPC   GRPCConfig   `yaml:"grpc"`
	Redis  RedisConfig  `yaml:"redis"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
	Worker WorkerConfig `yaml:"worker"`
}

type HTTPConfig struct {
	Address     string `yaml:"address"`
	DocsEnabled bool   `yaml:"docs_enabled"`
}

// GRPCConfig leaves the gRPC listener off when Address is empty.
type GRPCConfig struct {
	Address string `yaml:"address"`
}

// RedisConfig leaves the catalog cache off when Addr is empty.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig leaves event publishing off when Brokers is empty.
type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	EventsTopic  string   `yaml:"events_topic"`
	GroupID      string   `yaml:"group_id"`
	PublishRetry int      `yaml:"publish_retry"`
}

type CacheConfig struct {
	CatalogTTLSeconds int `yaml:"catalog_ttl_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WorkerConfig struct {
	Service string `yaml:"service"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: DefaultHTTPAddress, DocsEnabled: true},
		Kafka: KafkaConfig{
			EventsTopic:  "booking-events",
			GroupID:      "booking-notifications",
			PublishRetry: 3,
		},
		Cache:  CacheConfig{CatalogTTLSeconds: DefaultCatalogTTL},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Worker: WorkerConfig{Service: "booking-worker"},
	}
}

// LoadConfig reads the YAML file at path on top of Default. A missing file
// yields the defaults; ${VAR} references are expanded from the environment,
// which is first populated from .env when that file exists.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = DefaultHTTPAddress
	}
	if cfg.Cache.CatalogTTLSeconds <= 0 {
		cfg.Cache.CatalogTTLSeconds = DefaultCatalogTTL
	}

	return cfg, nil
}
