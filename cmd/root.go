package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dateplan/internal/itinerary"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	DataDir     string
	DBPath      string
	LogPath     string
	HomeZone    string
	GeoURL      string
	GeoEnabled  bool
	EmptyZone   itinerary.EmptyZonePolicy
	Debug       bool
	ShowVersion bool

	// geoURLSet records an explicit endpoint, which opts into lookups
	// regardless of onboarding.
	geoURLSet bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(args []string) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with existing flag parsing.
	// Missing files are fine and existing variables are never overridden.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var emptyZone string
	fs := flag.NewFlagSet("dateplan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.dateplan/dateplan.db, or DATEPLAN_DB)")
	fs.StringVar(&config.HomeZone, "home-zone", "", "Zone to plan from at startup (or DATEPLAN_HOME_ZONE)")
	fs.StringVar(&config.GeoURL, "geo-url", "", "IP geolocation endpoint (or DATEPLAN_GEO_URL)")
	fs.StringVar(&emptyZone, "empty-zone", "", "What removing the last stop does to the location: keep or clear (or DATEPLAN_EMPTY_ZONE)")
	fs.StringVar(&config.LogPath, "log", "", "Path to log file (default: ~/.dateplan/dateplan.log)")
	fs.BoolVar(&config.Debug, "debug", false, "Log at debug level")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	config.DBPath = firstNonEmpty(config.DBPath, os.Getenv("DATEPLAN_DB"))
	config.HomeZone = strings.TrimSpace(firstNonEmpty(config.HomeZone, os.Getenv("DATEPLAN_HOME_ZONE")))
	config.GeoURL = firstNonEmpty(config.GeoURL, os.Getenv("DATEPLAN_GEO_URL"))
	config.geoURLSet = config.GeoURL != ""
	emptyZone = firstNonEmpty(emptyZone, os.Getenv("DATEPLAN_EMPTY_ZONE"))

	policy, err := itinerary.ParseEmptyZonePolicy(strings.ToLower(strings.TrimSpace(emptyZone)))
	if err != nil {
		return nil, err
	}
	config.EmptyZone = policy

	if config.ShowVersion {
		return config, nil
	}

	// Set default DB path if not specified
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		config.DataDir = filepath.Join(home, ".dateplan")
		config.DBPath = filepath.Join(config.DataDir, "dateplan.db")
	} else {
		config.DataDir = filepath.Dir(config.DBPath)
	}
	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if config.LogPath == "" {
		config.LogPath = filepath.Join(config.DataDir, "dateplan.log")
	}

	return config, nil
}

// Onboard applies first-run settings, asking for them when the terminal
// is interactive and they have not been stored yet. zones are offered as
// home zone choices.
func Onboard(config *Config, zones []string) error {
	settings, err := loadOnboardingSettings(config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to load onboarding settings: %w", err)
	}

	if shouldRunOnboarding(settings) {
		settings, err = runOnboarding(config.DataDir, zones)
		if err != nil {
			return fmt.Errorf("failed to run onboarding: %w", err)
		}
	}

	applySettings(config, settings)
	return nil
}

// applySettings merges stored onboarding answers under flags and env.
func applySettings(config *Config, settings OnboardingSettings) {
	if config.HomeZone == "" {
		config.HomeZone = settings.HomeZone
	}
	config.GeoEnabled = settings.GeoEnabled || config.geoURLSet
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
