package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MKT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file only means plain environment variables apply
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// defaults and environment only
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, uploads can be large
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("marketplace.inferenceBaseOffset", 156000)
	v.SetDefault("marketplace.seedDemoData", true)
	v.SetDefault("marketplace.defaultTopLimit", 10)
	v.SetDefault("marketplace.uploadDir", "uploads")
	v.SetDefault("marketplace.maxUploadSizeMB", 100)
	v.SetDefault("marketplace.strictTransactionHash", false)
}

// getEnvironment determines the environment to use based on MKT_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets explicit environment variables win over file values
func processEnvOverrides(v *viper.Viper) {
	if host := os.Getenv("MKT_SERVER_HOST"); host != "" {
		v.Set("server.host", host)
	}
	// PORT is what most hosting platforms inject
	if port := getEnvInt("PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if port := getEnvInt("MKT_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if origins := os.Getenv("MKT_SERVER_ALLOWED_ORIGINS"); origins != "" {
		v.Set("server.allowedOrigins", strings.Split(origins, ","))
	}

	if logLevel := os.Getenv("MKT_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if offset, ok := lookupEnvInt64("MKT_MARKETPLACE_INFERENCE_BASE_OFFSET"); ok && offset >= 0 {
		v.Set("marketplace.inferenceBaseOffset", offset)
	}
	if seed := os.Getenv("MKT_MARKETPLACE_SEED_DEMO_DATA"); seed != "" {
		if enabled, err := strconv.ParseBool(seed); err == nil {
			v.Set("marketplace.seedDemoData", enabled)
		}
	}
	if limit := getEnvInt("MKT_MARKETPLACE_DEFAULT_TOP_LIMIT", 0); limit > 0 {
		v.Set("marketplace.defaultTopLimit", limit)
	}
	if dir := os.Getenv("MKT_MARKETPLACE_UPLOAD_DIR"); dir != "" {
		v.Set("marketplace.uploadDir", dir)
	}
	if size := getEnvInt("MKT_MARKETPLACE_MAX_UPLOAD_SIZE_MB", 0); size > 0 {
		v.Set("marketplace.maxUploadSizeMB", size)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func lookupEnvInt64(name string) (int64, bool) {
	valStr, ok := os.LookupEnv(name)
	if !ok || valStr == "" {
		return 0, false
	}
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
}

func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}
	if config.Marketplace.InferenceBaseOffset < 0 {
		return fmt.Errorf("inference base offset cannot be negative")
	}
	if config.Marketplace.DefaultTopLimit <= 0 {
		return fmt.Errorf("default top limit must be positive")
	}
	if config.Marketplace.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	return nil
}
