package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "NEWSCRED_CONFIG"
	httpAddrEnv    = "HTTP_ADDR"
	databaseDSNEnv = "DATABASE_DSN"
	redisAddrEnv   = "REDIS_ADDR"
	redisPassEnv   = "REDIS_PASS"
	natsURLEnv     = "NATS_URL"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	NATS     NATSConfig     `yaml:"nats"`
	Worker   WorkerConfig   `yaml:"worker"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// HTTPConfig describes the submission API listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// RedisConfig wires the optional score cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// NATSConfig wires the optional analysis-event publisher.
type NATSConfig struct {
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subjectPrefix"`
}

// WorkerConfig sizes the background analysis pool.
type WorkerConfig struct {
	Count     int `yaml:"count"`
	QueueSize int `yaml:"queueSize"`
}

// AnalysisConfig carries pipeline knobs; zero values fall back to defaults.
type AnalysisConfig struct {
	SourceTimeout     time.Duration `yaml:"sourceTimeout"`
	FactCheckTimeout  time.Duration `yaml:"factCheckTimeout"`
	SourceDelay       time.Duration `yaml:"sourceDelay"`
	FactCheckDelay    time.Duration `yaml:"factCheckDelay"`
	ApprovalThreshold float64       `yaml:"approvalThreshold"`
}

// LoggingConfig keeps log verbosity settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config referenced by NEWSCRED_CONFIG, then applies
// environment overrides and defaults. A missing file is not fatal: the
// service can run entirely from env vars.
func Load() Config {
	var cfg Config

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: cannot read %s: %v", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v", path, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(httpAddrEnv); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv(databaseDSNEnv); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv(redisAddrEnv); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv(redisPassEnv); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv(natsURLEnv); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		cfg.Logging.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = 24 * time.Hour
	}
	if cfg.NATS.SubjectPrefix == "" {
		cfg.NATS.SubjectPrefix = "articles.analysis"
	}
	if cfg.Worker.Count <= 0 {
		cfg.Worker.Count = 4
	}
	if cfg.Worker.QueueSize <= 0 {
		cfg.Worker.QueueSize = 64
	}
	if cfg.Analysis.SourceTimeout <= 0 {
		cfg.Analysis.SourceTimeout = 8 * time.Second
	}
	if cfg.Analysis.FactCheckTimeout <= 0 {
		cfg.Analysis.FactCheckTimeout = 5 * time.Second
	}
	if cfg.Analysis.SourceDelay <= 0 {
		cfg.Analysis.SourceDelay = 500 * time.Millisecond
	}
	if cfg.Analysis.FactCheckDelay <= 0 {
		cfg.Analysis.FactCheckDelay = 300 * time.Millisecond
	}
	if cfg.Analysis.ApprovalThreshold <= 0 {
		cfg.Analysis.ApprovalThreshold = 50
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
