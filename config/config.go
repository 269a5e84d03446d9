// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Dataset sources.
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
	SourceMySQL    = "mysql"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Seasons offered by the season selector, in selector order.
	SupportedSeasons []int
	DefaultSeason    int

	// DatasetSource selects where the records are read from at startup.
	DatasetSource string

	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// MySQL – used when DatasetSource is mysql.
	MySQLDSN string

	// AssetsFile optionally replaces the embedded image catalog.
	AssetsFile string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := FromViper(NewViper())
	if err != nil {
		log.Fatal("config: ", err)
	}
	return cfg
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", ":9000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("TLS_DOMAINS", "f1dash.app,www.f1dash.app")
	v.SetDefault("SUPPORTED_SEASONS", "2023,2022")
	v.SetDefault("DEFAULT_SEASON", 2023)
	v.SetDefault("DATASET_SOURCE", SourceEmbedded)
	v.SetDefault("DB_USER", "f1dash")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "f1dash")
	v.SetDefault("DB_SSLMODE", "disable")
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	seasons, err := parseSeasons(v.GetString("SUPPORTED_SEASONS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Debug:            v.GetBool("DEBUG"),
		Port:             v.GetString("PORT"),
		TLSDomains:       splitTrimmed(v.GetString("TLS_DOMAINS")),
		SupportedSeasons: seasons,
		DefaultSeason:    v.GetInt("DEFAULT_SEASON"),
		DatasetSource:    strings.ToLower(strings.TrimSpace(v.GetString("DATASET_SOURCE"))),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		DBUser:           v.GetString("DB_USER"),
		DBPass:           v.GetString("DB_PASS"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBName:           v.GetString("DB_NAME"),
		DBSSLMode:        v.GetString("DB_SSLMODE"),
		MySQLDSN:         v.GetString("MYSQL_DSN"),
		AssetsFile:       v.GetString("ASSETS_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// SeasonSupported reports whether the season selector offers year.
func (c *Config) SeasonSupported(year int) bool {
	return slices.Contains(c.SupportedSeasons, year)
}

// Validate checks combinations the service cannot start with.
func (c *Config) Validate() error {
	if len(c.SupportedSeasons) == 0 {
		return errors.New("SUPPORTED_SEASONS must list at least one season")
	}
	if !c.SeasonSupported(c.DefaultSeason) {
		return fmt.Errorf("DEFAULT_SEASON %d is not in SUPPORTED_SEASONS", c.DefaultSeason)
	}
	switch c.DatasetSource {
	case SourceEmbedded:
	case SourcePostgres:
		if c.DatabaseURL == "" && c.DBPass == "" {
			return errors.New("DATABASE_URL or DB_PASS must be set for the postgres dataset source")
		}
	case SourceMySQL:
		if c.MySQLDSN == "" {
			return errors.New("MYSQL_DSN must be set for the mysql dataset source")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.DatasetSource)
	}
	return nil
}

// NewViper returns the viper instance Load reads from: .env values exported
// into the environment, then AutomaticEnv. Callers may bind further sources,
// such as command line flags, before passing it to FromViper.
func NewViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func parseSeasons(s string) ([]int, error) {
	var out []int
	for _, p := range splitTrimmed(s) {
		year, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("SUPPORTED_SEASONS: %q is not a year", p)
		}
		if !slices.Contains(out, year) {
			out = append(out, year)
		}
	}
	return out, nil
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
