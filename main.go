package main

import (
	"fmt"
	"os"

	"dateplan/cmd"
	"dateplan/internal/db"
	"dateplan/internal/itinerary"
	"dateplan/internal/location"
	"dateplan/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if config.ShowVersion {
		fmt.Println("dateplan", version)
		return
	}

	logger, closeLog, err := cmd.NewLogger(config.LogPath, config.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open database
	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Errorw("failed to open database", "path", config.DBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	table, err := db.LoadDistanceTable(database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load distances: %v\n", err)
		os.Exit(1)
	}
	zones := table.Zones()

	if err := cmd.Onboard(config, zones); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Location provider
	var provider location.Provider
	if config.GeoEnabled {
		provider = location.NewHTTPProvider(config.GeoURL, zones)
	} else {
		provider = location.StaticProvider{Zone: config.HomeZone}
	}

	session := itinerary.New(itinerary.Options{EmptyZone: config.EmptyZone})
	if config.HomeZone != "" {
		session.SetReferenceZone(location.Snap(config.HomeZone, zones))
	}

	logger.Infow("starting",
		"version", version,
		"db", config.DBPath,
		"home_zone", config.HomeZone,
		"geo", config.GeoEnabled,
		"empty_zone", config.EmptyZone,
	)

	// Create and run Bubble Tea app
	app := ui.New(ui.Options{
		DB:        database,
		Session:   session,
		Provider:  provider,
		Logger:    logger,
		PrefsPath: ui.PrefsPath(config.DataDir),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Errorw("app exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
