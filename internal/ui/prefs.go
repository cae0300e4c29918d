package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dateplan/internal/model"
)

// TablePrefs stores per-table UI preferences.
type TablePrefs struct {
	SortKey       string   `json:"sort_key"`
	SortDesc      bool     `json:"sort_desc"`
	HiddenColumns []string `json:"hidden_columns"`
	ActiveColumn  string   `json:"active_column"`
}

// UIPreferences stores persisted display preferences. The itinerary itself
// is never written to disk.
type UIPreferences struct {
	Spots    TablePrefs     `json:"spots"`
	SortMode model.SortMode `json:"sort_mode,omitempty"`
}

// PrefsPath returns the default preferences file under dataDir.
func PrefsPath(dataDir string) string {
	return filepath.Join(dataDir, "ui_prefs.json")
}

func loadUIPreferences(path string) UIPreferences {
	if path == "" {
		return UIPreferences{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return UIPreferences{}
	}

	var prefs UIPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return UIPreferences{}
	}
	if prefs.SortMode != "" && !prefs.SortMode.Valid() {
		prefs.SortMode = ""
	}
	return prefs
}

func saveUIPreferences(path string, prefs UIPreferences) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
