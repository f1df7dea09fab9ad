package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Store      StoreConfig
	Redis      RedisConfig
	Registry   RegistryConfig
	Push       PushConfig
	Escalation EscalationConfig
	Access     AccessConfig
	NSQ        NSQConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name            string
	Environment     string
	Version         string
	DefaultLanguage string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int
	PublicBaseURL   string // origin used to build owner confirmation links
	ShutdownTimeout time.Duration
}

// StoreConfig selects the shared state store implementation
type StoreConfig struct {
	Driver string // "redis" or "memory"
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// RegistryConfig points at the static car list
type RegistryConfig struct {
	CarList     string // inline CSV, one "plate,endpoint,phone" per line
	CarListFile string
}

// PushConfig contains outbound push delivery settings
type PushConfig struct {
	Timeout time.Duration
	IconURL string
	Group   string
	Sound   string
	Level   string
}

// EscalationConfig contains notify timing settings
type EscalationConfig struct {
	NotifyDelay time.Duration // artificial delay for delayed deliveries
	Enforce     bool          // reject notifies that violate the retry cool-down
}

// AccessConfig contains request filtering settings
type AccessConfig struct {
	AllowedCountries   []string
	RateLimitPerMinute int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
