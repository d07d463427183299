package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MarketplaceConfig contains the store and settlement settings
type MarketplaceConfig struct {
	// InferenceBaseOffset is added to the logged inference count in stats
	InferenceBaseOffset int64 `mapstructure:"inferenceBaseOffset"`
	SeedDemoData        bool  `mapstructure:"seedDemoData"`
	// DefaultTopLimit applies when a leaderboard limit is not a number
	DefaultTopLimit       int    `mapstructure:"defaultTopLimit"`
	UploadDir             string `mapstructure:"uploadDir"`
	MaxUploadSizeMB       int64  `mapstructure:"maxUploadSizeMB"`
	StrictTransactionHash bool   `mapstructure:"strictTransactionHash"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// MaxUploadBytes returns the upload limit in bytes
func (c MarketplaceConfig) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}
