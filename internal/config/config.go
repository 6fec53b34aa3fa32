package config

import (
	"errors"
	"fmt"
	"time"

	"location-agent/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config directory and can be overridden by environment variables.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	DBSource      string        `mapstructure:"DB_SOURCE"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	NominatimURL  string        `mapstructure:"NOMINATIM_URL"`
	IPAPIURL      string        `mapstructure:"IPAPI_URL"`
	UserAgent     string        `mapstructure:"USER_AGENT"`
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	LogFormat     string        `mapstructure:"LOG_FORMAT"`

	// Fallbacks used when the caller cannot be located or gives no address.
	DefaultQuery     string  `mapstructure:"DEFAULT_QUERY"`
	DefaultLatitude  float64 `mapstructure:"DEFAULT_LATITUDE"`
	DefaultLongitude float64 `mapstructure:"DEFAULT_LONGITUDE"`
	DefaultCity      string  `mapstructure:"DEFAULT_CITY"`
	DefaultCountry   string  `mapstructure:"DEFAULT_COUNTRY"`
	DefaultAddress   string  `mapstructure:"DEFAULT_ADDRESS"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    "0.0.0.0:8080",
	"DB_SOURCE":         "",
	"REDIS_ADDR":        "",
	"CACHE_TTL":         "24h",
	"NOMINATIM_URL":     "https://nominatim.openstreetmap.org",
	"IPAPI_URL":         "http://ip-api.com",
	"USER_AGENT":        "LocationAgent/1.0",
	"HTTP_TIMEOUT":      "10s",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
	"DEFAULT_QUERY":     "Lagos, Nigeria",
	"DEFAULT_LATITUDE":  6.5244,
	"DEFAULT_LONGITUDE": 3.3792,
	"DEFAULT_CITY":      "Lagos",
	"DEFAULT_COUNTRY":   "Nigeria",
	"DEFAULT_ADDRESS":   "Lagos, Nigeria",
}

// LoadConfig reads configuration from app.env under path, a local .env file and the environment.
// A missing app.env is not an error; the built-in defaults apply.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: decode: %w", err)
	}

	if config.HTTPTimeout <= 0 {
		return config, fmt.Errorf("config: HTTP_TIMEOUT must be positive, got %s", config.HTTPTimeout)
	}

	return config, nil
}

// DefaultLocation is the position reported when IP geolocation is unavailable.
func (c Config) DefaultLocation() models.AutoLocation {
	return models.AutoLocation{
		Latitude:  c.DefaultLatitude,
		Longitude: c.DefaultLongitude,
		City:      c.DefaultCity,
		Country:   c.DefaultCountry,
		Address:   c.DefaultAddress,
	}
}
