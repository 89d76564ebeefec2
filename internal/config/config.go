package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	// Env is "development" or "production"
	Env string

	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Providers ProvidersConfig
	Upstream  UpstreamConfig
	Sweeper   SweeperConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
	AutoMigrate  bool
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// LogConfig selects the zerolog level and output format
type LogConfig struct {
	Level  string
	Format string
}

// ProvidersConfig holds credentials and endpoints of the travel APIs
type ProvidersConfig struct {
	Amadeus         AmadeusConfig    `yaml:"amadeus"`
	GoogleMaps      GoogleMapsConfig `yaml:"google_maps"`
	IATAGeo         IATAGeoConfig    `yaml:"iatageo"`
	Gemini          GeminiConfig     `yaml:"gemini"`
	DefaultRadiusKM float64          `yaml:"default_radius_km"`
}

type AmadeusConfig struct {
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"-"`
	ClientSecret string `yaml:"-"`
}

type GoogleMapsConfig struct {
	APIKey    string `yaml:"-"`
	MapsURL   string `yaml:"maps_url"`
	PlacesURL string `yaml:"places_url"`
}

type IATAGeoConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey      string  `yaml:"-"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// UpstreamConfig bounds every call to an external provider
type UpstreamConfig struct {
	Timeout time.Duration
}

// SweeperConfig controls the deferred hotel resolution job
type SweeperConfig struct {
	Enabled     bool
	Spec        string
	BatchSize   int
	MaxAttempts int
	Timeout     time.Duration
}

// Load loads configuration from .env, the environment and the optional
// PROVIDERS_CONFIG YAML file
func Load() (*Config, error) {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg(".env file not found")
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	config := &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
			AutoMigrate:  getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Providers: ProvidersConfig{
			Amadeus: AmadeusConfig{
				BaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
				ClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
				ClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
			},
			GoogleMaps: GoogleMapsConfig{
				APIKey:    getEnv("GOOGLE_MAPS_API_KEY", ""),
				MapsURL:   getEnv("GOOGLE_MAPS_URL", "https://maps.googleapis.com"),
				PlacesURL: getEnv("GOOGLE_PLACES_URL", "https://places.googleapis.com"),
			},
			IATAGeo: IATAGeoConfig{
				BaseURL: getEnv("IATAGEO_BASE_URL", "http://iatageo.com"),
			},
			Gemini: GeminiConfig{
				APIKey:      getEnv("GEMINI_API_KEY", ""),
				Model:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
				Temperature: getFloat32Env("GEMINI_TEMPERATURE", 0.2),
			},
			DefaultRadiusKM: getFloat64Env("DEFAULT_SEARCH_RADIUS_KM", 5),
		},
		Upstream: UpstreamConfig{
			Timeout: getDurationEnv("UPSTREAM_TIMEOUT", 5*time.Second),
		},
		Sweeper: SweeperConfig{
			Enabled:     getBoolEnv("SWEEPER_ENABLED", true),
			Spec:        getEnv("SWEEPER_SPEC", "@every 10m"),
			BatchSize:   int(getInt32Env("SWEEPER_BATCH_SIZE", 20)),
			MaxAttempts: int(getInt32Env("SWEEPER_MAX_ATTEMPTS", 5)),
			Timeout:     getDurationEnv("SWEEPER_TIMEOUT", 30*time.Second),
		},
	}

	if path := os.Getenv("PROVIDERS_CONFIG"); path != "" {
		if err := config.applyProvidersFile(path); err != nil {
			return nil, err
		}
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// applyProvidersFile overlays non-empty values from a YAML file. Secrets
// are never read from the file.
func (c *Config) applyProvidersFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read providers config %s: %w", path, err)
	}
	var file ProvidersConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse providers config %s: %w", path, err)
	}

	p := &c.Providers
	override(&p.Amadeus.BaseURL, file.Amadeus.BaseURL)
	override(&p.GoogleMaps.MapsURL, file.GoogleMaps.MapsURL)
	override(&p.GoogleMaps.PlacesURL, file.GoogleMaps.PlacesURL)
	override(&p.IATAGeo.BaseURL, file.IATAGeo.BaseURL)
	override(&p.Gemini.Model, file.Gemini.Model)
	if file.Gemini.Temperature > 0 {
		p.Gemini.Temperature = file.Gemini.Temperature
	}
	if file.DefaultRadiusKM > 0 {
		p.DefaultRadiusKM = file.DefaultRadiusKM
	}
	log.Info().Str("path", path).Msg("providers config applied")
	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.Providers.DefaultRadiusKM <= 0 {
		return fmt.Errorf("DEFAULT_SEARCH_RADIUS_KM must be positive")
	}

	if !c.IsAmadeusConfigured() {
		log.Warn().Msg("Amadeus credentials not configured. Hotel and flight search will not work.")
	}
	if c.Providers.GoogleMaps.APIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not configured. Geocoding and photos will not work.")
	}
	if c.Providers.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not configured. The itinerary assistant is disabled.")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// IsAmadeusConfigured checks if Amadeus credentials are present
func (c *Config) IsAmadeusConfigured() bool {
	return c.Providers.Amadeus.ClientID != "" && c.Providers.Amadeus.ClientSecret != ""
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getFloat64Env(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getFloat32Env(key string, defaultValue float32) float32 {
	return float32(getFloat64Env(key, float64(defaultValue)))
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
