package config

import (
	"fmt"
	"log"
	"os"
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

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment,
// with CA_-prefixed environment variables overriding file values.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		// A missing .env file is fine; everything it would set can come
		// from the real environment.
		log.Printf("Warning: could not load .env file: %v", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("CA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("coupon.registry", RegistryDatabase)
}

// getEnvironment determines the environment from the CA_ENV variable
func getEnvironment() string {
	env := os.Getenv("CA_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config
// values for sensitive settings
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("CA_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("CA_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("CA_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("CA_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("CA_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("CA_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}
}

// processDurations converts the raw integer config values into their
// intended duration units
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
}

// StaticCoupons converts the static coupon table in config into the
// (code, amount, limit, expiry) tuples the registry consumes. Rows that
// fail validation are reported, not silently dropped.
func (c *Config) StaticCoupons() ([]StaticCoupon, error) {
	out := make([]StaticCoupon, 0, len(c.Coupon.Static))
	for _, seed := range c.Coupon.Static {
		sc := StaticCoupon{
			Code:         seed.Code,
			CreditAmount: seed.CreditAmount,
			UsageLimit:   seed.UsageLimit,
		}
		if seed.ExpiresAt != "" {
			expiry, err := time.Parse(time.RFC3339, seed.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("coupon %q has invalid expiresAt: %w", seed.Code, err)
			}
			sc.ExpiresAt = &expiry
		}
		out = append(out, sc)
	}
	return out, nil
}

// StaticCoupon is a parsed static-table row
type StaticCoupon struct {
	Code         string
	CreditAmount int64
	UsageLimit   uint64
	ExpiresAt    *time.Time
}
