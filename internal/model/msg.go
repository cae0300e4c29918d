package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// CatalogLoadedMsg is sent when venues, distances and templates are loaded.
type CatalogLoadedMsg struct {
	Venues    []Venue
	Distances []Distance
	Templates []Template
}

// LocationResolvedMsg is sent when a current-location lookup succeeds.
type LocationResolvedMsg struct {
	RequestID  string
	Generation uint64
	Zone       string
}

// LocationFailedMsg is sent when a current-location lookup fails.
type LocationFailedMsg struct {
	RequestID  string
	Generation uint64
	Err        error
}

// LocationSubmittedMsg is sent when a zone is entered by hand.
type LocationSubmittedMsg struct {
	Zone string
}

// LocationRequestedMsg asks for a current-location lookup.
type LocationRequestedMsg struct{}

// FormCancelledMsg is sent when a form is dismissed without changes.
type FormCancelledMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenSpots Screen = iota
	ScreenPlan
	ScreenSpotDetail
	ScreenTemplates
	ScreenLocationForm
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
