package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFile            string        `mapstructure:"LOG_FILE"`
	GeolocationTimeout time.Duration `mapstructure:"GEOLOCATION_TIMEOUT"`
	HiddenVenues       []string      `mapstructure:"HIDDEN_VENUES"`
	GeolocationDenied  bool          `mapstructure:"GEOLOCATION_DENIED"`
	FixedOrigin        bool          `mapstructure:"FIXED_ORIGIN"`
	OriginLatitude     float64       `mapstructure:"ORIGIN_LATITUDE"`
	OriginLongitude    float64       `mapstructure:"ORIGIN_LONGITUDE"`
	GeoIPDatabase      string        `mapstructure:"GEOIP_DATABASE"`
	GeoIPCacheSize     int           `mapstructure:"GEOIP_CACHE_SIZE"`
	GeoIPCacheTTL      time.Duration `mapstructure:"GEOIP_CACHE_TTL"`
	BrowserCommand     string        `mapstructure:"BROWSER_COMMAND"`
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("GEOLOCATION_TIMEOUT", "10s")
	v.SetDefault("HIDDEN_VENUES", "")
	v.SetDefault("GEOLOCATION_DENIED", false)
	v.SetDefault("FIXED_ORIGIN", false)
	v.SetDefault("ORIGIN_LATITUDE", 0)
	v.SetDefault("ORIGIN_LONGITUDE", 0)
	v.SetDefault("GEOIP_DATABASE", "")
	v.SetDefault("GEOIP_CACHE_SIZE", 1024)
	v.SetDefault("GEOIP_CACHE_TTL", "1h")
	v.SetDefault("BROWSER_COMMAND", "")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	config.HiddenVenues = compact(config.HiddenVenues)
	return
}

func compact(keys []string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
