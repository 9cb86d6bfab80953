package config

import (
	"alcyxob/fitness-tracker/internal/domain"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Tracker TrackerConfig `mapstructure:"tracker"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// TrackerConfig drives the CLI driver and the service error policy.
type TrackerConfig struct {
	Locale     string           `mapstructure:"locale"`
	SkipFailed bool             `mapstructure:"skip_failed"`
	Packages   []domain.Package `mapstructure:"packages"`
}

// DefaultPackages are the reference sensor packets processed when none are configured.
var DefaultPackages = []domain.Package{
	{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
	{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, tracker.locale -> TRACKER_LOCALE
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("tracker.locale", string(domain.LocaleEN))
	v.SetDefault("tracker.skip_failed", false)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No file; defaults and env vars only.
		err = nil
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(config.Tracker.Packages) == 0 {
		config.Tracker.Packages = append([]domain.Package(nil), DefaultPackages...)
	}
	if _, err = domain.ParseLocale(config.Tracker.Locale); err != nil {
		return config, fmt.Errorf("tracker.locale: %w", err)
	}

	return config, nil
}

// ParsedLocale returns the summary locale, English when unset or invalid.
func (c TrackerConfig) ParsedLocale() domain.Locale {
	l, err := domain.ParseLocale(c.Locale)
	if err != nil {
		return domain.LocaleEN
	}
	return l
}
