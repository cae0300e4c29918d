package ui

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dateplan/internal/db"
	"dateplan/internal/distance"
	"dateplan/internal/itinerary"
	"dateplan/internal/location"
	"dateplan/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const defaultLookupTimeout = 8 * time.Second

// Options wires the root model to its collaborators.
type Options struct {
	DB       *sql.DB
	Session  *itinerary.Session
	Provider location.Provider
	Logger   *zap.SugaredLogger

	// PrefsPath is where table preferences are kept. Empty disables
	// persistence.
	PrefsPath     string
	LookupTimeout time.Duration
}

// Model is the root Bubble Tea model.
type Model struct {
	db            *sql.DB
	session       *itinerary.Session
	provider      location.Provider
	logger        *zap.SugaredLogger
	prefsPath     string
	lookupTimeout time.Duration

	venues    []model.Venue
	templates []model.Template
	distances *distance.Table
	loaded    bool

	tracker location.Tracker
	drag    itinerary.Drag

	screen model.Screen
	tab    model.Screen
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	columnJump  bool

	// Screen models
	spots          *SpotsModel
	plan           *PlanModel
	spotDetail     *SpotDetailModel
	templatePicker *TemplatesModel
	locationForm   *LocationFormModel
	spinner        spinner.Model

	keys      KeyMap
	prefs     UIPreferences
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	session := opts.Session
	if session == nil {
		session = itinerary.New(itinerary.Options{})
	}
	timeout := opts.LookupTimeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	prefs := loadUIPreferences(opts.PrefsPath)
	if prefs.SortMode != "" {
		session.SetSort(prefs.SortMode)
	}

	spots := NewSpotsModel()
	spots.ApplyPrefs(prefs.Spots)

	m := Model{
		db:            opts.DB,
		session:       session,
		provider:      opts.Provider,
		logger:        logger,
		prefsPath:     opts.PrefsPath,
		lookupTimeout: timeout,
		screen:        model.ScreenSpots,
		tab:           model.ScreenSpots,
		mode:          model.ModeNav,
		gState:        GStateIdle,
		spots:         spots,
		plan:          NewPlanModel(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorRose)),
		),
		keys:  DefaultKeyMap(),
		prefs: prefs,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.db == nil {
		return nil
	}
	return loadCatalogCmd(m.db)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == model.ModeNav && m.columnJump {
			if msg.String() == "esc" {
				m.columnJump = false
				m.info = ""
				return m, nil
			}
			if n, err := strconv.Atoi(msg.String()); err == nil {
				if m.spots.JumpToColumn(n) {
					m.columnJump = false
					m.info = fmt.Sprintf("Jumped to column %d", n)
					m.persistPrefs()
					return m, nil
				}
				m.info = fmt.Sprintf("Column %d unavailable", n)
				return m, nil
			}
		}

		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Help) && m.mode == model.ModeNav {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.logger.Errorw("operation failed", "error", msg.Err)
		m.error = msg.Err.Error()
		return m, nil

	case model.CatalogLoadedMsg:
		m.applyCatalog(msg)
		return m, nil

	case model.LocationSubmittedMsg:
		m.tracker.Cancel()
		m.closeOverlay()
		m.mutate("location set", func() bool {
			m.session.SetReferenceZone(msg.Zone)
			return true
		})
		m.error = ""
		m.info = "Location set to " + msg.Zone
		return m, nil

	case model.LocationRequestedMsg:
		if m.provider == nil {
			m.setLocationError(location.ErrUnavailable)
			return m, nil
		}
		req := m.tracker.Begin(m.session.ZoneGeneration())
		m.logger.Debugw("location lookup started", "request", req.ID)
		return m, tea.Batch(m.spinner.Tick, resolveLocationCmd(m.provider, req, m.lookupTimeout))

	case model.LocationResolvedMsg:
		req := location.Request{ID: msg.RequestID, Generation: msg.Generation}
		if !m.tracker.Settle(req, m.session.ZoneGeneration()) {
			m.logger.Debugw("stale location result discarded", "request", msg.RequestID, "zone", msg.Zone)
			return m, nil
		}
		m.logger.Infow("location resolved", "zone", msg.Zone)
		if m.screen == model.ScreenLocationForm {
			m.closeOverlay()
		}
		m.mutate("location set", func() bool {
			m.session.SetReferenceZone(msg.Zone)
			return true
		})
		m.error = ""
		m.info = "Location set to " + msg.Zone
		return m, nil

	case model.LocationFailedMsg:
		req := location.Request{ID: msg.RequestID, Generation: msg.Generation}
		if !m.tracker.Settle(req, m.session.ZoneGeneration()) {
			m.logger.Debugw("stale location failure discarded", "request", msg.RequestID)
			return m, nil
		}
		m.logger.Warnw("location lookup failed", "error", msg.Err)
		m.setLocationError(msg.Err)
		return m, nil

	case model.FormCancelledMsg:
		m.tracker.Cancel()
		m.closeOverlay()
		return m, nil

	case spinner.TickMsg:
		if !m.tracker.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		// Pass all other messages to forms
		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
	}

	return m, nil
}

func (m *Model) applyCatalog(msg model.CatalogLoadedMsg) {
	m.venues = msg.Venues
	m.templates = msg.Templates
	m.distances = distance.NewTable(msg.Distances)
	m.loaded = true
	m.error = ""

	for _, d := range m.distances.Asymmetric() {
		m.logger.Warnw("asymmetric distance entry", "from", d.From, "to", d.To, "miles", d.Miles)
	}
	m.logger.Infow("catalog loaded",
		"venues", len(msg.Venues),
		"zones", len(m.distances.Zones()),
		"templates", len(msg.Templates),
	)
	m.refresh()
}

// refresh recomputes everything derived from the session.
func (m *Model) refresh() {
	stops := m.session.Stops()
	m.spots.SetRows(
		m.session.Candidates(m.venues, m.distances),
		m.session.ReferenceZone() != "",
		len(stops) > 0,
		stops,
	)
	m.plan.SetPlan(stops, m.session.Summary(m.distances), m.session.Guide())
}

func (m *Model) persistPrefs() {
	m.prefs.Spots = m.spots.Prefs()
	m.prefs.SortMode = m.session.Sort()
	if err := saveUIPreferences(m.prefsPath, m.prefs); err != nil {
		m.logger.Warnw("failed to save preferences", "error", err)
	}
}

func (m *Model) setLocationError(err error) {
	text := "Couldn't find your location: " + err.Error()
	if m.locationForm != nil {
		m.locationForm.SetError(text + ". Type a zone instead.")
		return
	}
	m.error = text
}

func (m *Model) openOverlay(screen model.Screen) {
	if m.screen == model.ScreenSpots || m.screen == model.ScreenPlan {
		m.tab = m.screen
	}
	m.drag.Cancel()
	m.screen = screen
}

func (m *Model) closeOverlay() {
	m.mode = model.ModeNav
	m.screen = m.tab
	m.spotDetail = nil
	m.templatePicker = nil
	m.locationForm = nil
}

// zones lists the known zones for presets and snapping.
func (m *Model) zones() []string {
	return m.distances.Zones()
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenSpots || m.screen == model.ScreenPlan

	// Header: 1 line, Footer: 1 line, Tabs: 2 lines (if shown)
	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenSpots:
		breadcrumbParts = []string{"Spots"}
		bar := m.renderFilterBar()
		content = lipgloss.JoinVertical(lipgloss.Left, bar,
			m.spots.View(m.width, contentHeight-lipgloss.Height(bar), m.spotsEmptyMessage()))
	case model.ScreenPlan:
		breadcrumbParts = []string{"Plan"}
		content = m.plan.View(m.width, contentHeight, m.drag)
	case model.ScreenSpotDetail:
		breadcrumbParts = []string{"Spots", "Detail"}
		if m.spotDetail != nil {
			breadcrumbParts = []string{"Spots", m.spotDetail.spot.Name}
			content = m.spotDetail.View(m.width, contentHeight, m.session.ReferenceZone())
		}
	case model.ScreenTemplates:
		breadcrumbParts = []string{"Templates"}
		if m.templatePicker != nil {
			content = m.templatePicker.View(m.width, contentHeight, m.session.Len())
		}
	case model.ScreenLocationForm:
		breadcrumbParts = []string{"Location"}
		if m.locationForm != nil {
			status := ""
			if m.tracker.Pending() {
				status = m.spinner.View() + " Finding your location..."
			}
			content = m.locationForm.View(m.width, contentHeight, status)
		}
	}

	header := renderHeader(breadcrumbParts, m.session.ReferenceZone(), m.width)
	footer := RenderHelp(m.screen, m.mode, m.drag.Active(), m.width)

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	parts := []string{header}
	if showTabs {
		parts = append(parts, renderTabs(m.screen, m.session.Len(), m.width))
	}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFilterBar() string {
	var chips []string
	active := m.session.Category()
	for i, c := range model.Categories {
		style := HelpDescStyle
		if c == active {
			style = BreadcrumbActiveStyle.Bold(true).Underline(true)
		}
		chips = append(chips, HelpKeyStyle.Render(strconv.Itoa(i+1))+" "+style.Render(c.Label()))
	}
	line := strings.Join(chips, "  ")
	line += HelpDescStyle.Render("   ·   sort ") + NormalRowStyle.Render(m.session.Sort().Label())

	if g := m.session.Guide(); g.Active() {
		line += HelpDescStyle.Render("   ·   ") + DropTargetStyle.Render(g.Label())
	}
	return lipgloss.NewStyle().Padding(0, 2).Width(m.width).Render(line)
}

func (m Model) spotsEmptyMessage() string {
	if !m.loaded {
		return "Loading spots..."
	}
	if zone := m.session.ReferenceZone(); zone != "" {
		return fmt.Sprintf("No %s spots near %s.\nTry another category or press  X  to clear the location.",
			strings.ToLower(m.session.Category().Label()), zone)
	}
	return "No spots match this category."
}

func renderTabs(screen model.Screen, stops int, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Spots", model.ScreenSpots},
		{fmt.Sprintf("Plan (%d)", stops), model.ScreenPlan},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, zone string, width int) string {
	title := HeaderStyle.Render("dateplan")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	where := "no location"
	if zone != "" {
		where = "near " + zone
	}
	right := BreadcrumbStyle.Render(where+"  ·  "+time.Now().Format("Mon 02 Jan")) + "  "

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == model.ScreenPlan && m.drag.Active() {
		return m.handleDrag(msg)
	}

	if m.screen == model.ScreenSpots {
		if handled := m.handleTableControls(msg, m.spots); handled {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Undo):
		m.undo()
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		m.redo()
		return m, nil
	}

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		m.handleJumpToTop()
		return m, nil
	}
	m.gState = GStateIdle

	switch m.screen {
	case model.ScreenSpots:
		return m.handleSpotsNav(msg)
	case model.ScreenPlan:
		return m.handlePlanNav(msg)
	case model.ScreenSpotDetail:
		return m.handleSpotDetailNav(msg)
	case model.ScreenTemplates:
		return m.handleTemplatesNav(msg)
	}

	return m, nil
}

func (m *Model) handleTableControls(msg tea.KeyMsg, t tableController) bool {
	switch {
	case key.Matches(msg, m.keys.NextColumn):
		t.NextColumn()
	case key.Matches(msg, m.keys.PrevColumn):
		t.PrevColumn()
	case key.Matches(msg, m.keys.ColumnJump):
		m.columnJump = true
		m.info = "Jump to column: press 1-8 (esc to cancel)"
		return true
	case key.Matches(msg, m.keys.SortAsc):
		t.SortActiveColumn(false)
		m.info = "Sorted ascending"
	case key.Matches(msg, m.keys.SortDesc):
		t.SortActiveColumn(true)
		m.info = "Sorted descending"
	case key.Matches(msg, m.keys.HideColumn):
		if !t.HideActiveColumn() {
			m.info = "Cannot hide last visible column"
			return true
		}
		m.info = "Column hidden"
	case key.Matches(msg, m.keys.ShowColumns):
		t.ShowAllColumns()
		m.info = "All columns shown"
	default:
		return false
	}
	m.persistPrefs()
	return true
}

// handleSessionKeys covers the keys shared by both tabs.
func (m *Model) handleSessionKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Plan):
		if m.screen == model.ScreenSpots {
			m.screen = model.ScreenPlan
		} else {
			m.screen = model.ScreenSpots
		}
		m.tab = m.screen
		return true, nil
	case key.Matches(msg, m.keys.Location):
		m.locationForm = NewLocationFormModel(m.session.ReferenceZone(), m.zones())
		m.openOverlay(model.ScreenLocationForm)
		m.mode = model.ModeInsert
		return true, nil
	case key.Matches(msg, m.keys.ClearZone):
		m.tracker.Cancel()
		if m.mutate("location cleared", func() bool {
			m.session.ClearReferenceZone()
			return true
		}) {
			m.info = "Location cleared"
		}
		return true, nil
	case key.Matches(msg, m.keys.Templates):
		m.templatePicker = NewTemplatesModel(m.templates)
		m.openOverlay(model.ScreenTemplates)
		return true, nil
	case key.Matches(msg, m.keys.ExitTemplate):
		t := m.session.Template()
		if t == nil {
			m.info = "No template in progress"
			return true, nil
		}
		m.mutate("left "+t.Name, func() bool {
			m.session.ExitTemplate()
			return true
		})
		m.info = "Left " + t.Name + ", your stops are kept"
		return true, nil
	}
	return false, nil
}

func (m Model) handleSpotsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleSessionKeys(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Select):
		if c, ok := m.spots.Selected(); ok {
			m.selectSpot(c.Venue)
		}
		return m, nil
	case key.Matches(msg, m.keys.Detail):
		if c, ok := m.spots.Selected(); ok {
			m.spotDetail = NewSpotDetailModel(c, m.session.Contains(c.ID))
			m.openOverlay(model.ScreenSpotDetail)
		}
		return m, nil
	case key.Matches(msg, m.keys.Category):
		m.setCategory(msg.String())
		return m, nil
	case key.Matches(msg, m.keys.CycleSort):
		next := nextSortMode(m.session.Sort())
		m.mutate("sort "+next.Label(), func() bool { return m.session.SetSort(next) })
		m.spots.ClearColumnSort()
		m.persistPrefs()
		m.info = "Sorted by " + next.Label()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.spots.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.spots.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.spots.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.spots.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.spots.HalfPageUp(m.height / 2)
	}
	return m, nil
}

func (m Model) handlePlanNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleSessionKeys(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Remove):
		v, ok := m.plan.Selected()
		if !ok {
			return m, nil
		}
		m.mutate("removed "+v.Name, func() bool { return m.session.Remove(v.ID) })
		m.info = "Removed " + v.Name
	case key.Matches(msg, m.keys.Move):
		v, ok := m.plan.Selected()
		if !ok || m.session.Len() < 2 {
			m.info = "Need at least two stops to reorder"
			return m, nil
		}
		m.drag.Start(m.plan.Cursor())
		m.info = "Moving " + v.Name + ": j/k to choose a position, enter to drop"
	case key.Matches(msg, m.keys.Down):
		m.plan.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.plan.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.plan.SetCursor(m.session.Len() - 1)
	}
	return m, nil
}

func (m Model) handleDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.session.Len() - 1
	switch {
	case key.Matches(msg, m.keys.Down):
		m.drag.Over(min(m.drag.Target()+1, last))
	case key.Matches(msg, m.keys.Up):
		m.drag.Over(max(m.drag.Target()-1, 0))
	case msg.String() == "enter":
		target := m.drag.Target()
		if m.mutate("moved stop", func() bool { return m.drag.Drop(m.session) }) {
			m.plan.SetCursor(target)
			m.info = fmt.Sprintf("Moved to position %d", target+1)
		} else {
			m.info = "Stop left in place"
		}
	case msg.String() == "esc":
		m.drag.Cancel()
		m.info = "Move cancelled"
	}
	return m, nil
}

func (m Model) handleSpotDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.PrevTab):
		m.closeOverlay()
	case key.Matches(msg, m.keys.Select):
		if m.spotDetail != nil {
			v := m.spotDetail.spot.Venue
			m.closeOverlay()
			m.selectSpot(v)
		}
	}
	return m, nil
}

func (m Model) handleTemplatesNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.templatePicker == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeOverlay()
	case key.Matches(msg, m.keys.Down):
		m.templatePicker.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.templatePicker.MoveUp()
	case key.Matches(msg, m.keys.Select):
		t, ok := m.templatePicker.Selected()
		if !ok {
			return m, nil
		}
		var err error
		m.mutate("started "+t.Name, func() bool {
			err = m.session.SelectTemplate(t)
			return err == nil
		})
		if err != nil {
			return m, func() tea.Msg { return model.ErrorMsg{Err: err} }
		}
		m.closeOverlay()
		m.screen = model.ScreenSpots
		m.tab = model.ScreenSpots
		m.spots.JumpToTop()
		m.info = t.Name + ": " + m.session.Guide().Label()
	}
	return m, nil
}

// handleInsertMode routes input to the location form.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == model.ScreenLocationForm && m.locationForm != nil {
		form, cmd := m.locationForm.Update(msg)
		m.locationForm = &form
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleJumpToTop() {
	switch m.screen {
	case model.ScreenSpots:
		m.spots.JumpToTop()
	case model.ScreenPlan:
		m.plan.SetCursor(0)
	}
}

func (m *Model) selectSpot(v model.Venue) {
	active := m.session.Template()
	already := m.session.Contains(v.ID)

	label := "added " + v.Name
	if already {
		label = "centered on " + v.Name
	}
	m.mutate(label, func() bool { return m.session.Select(v) })
	m.error = ""

	switch {
	case already:
		m.info = v.Name + " is already in your plan; showing spots near " + v.Zone
	case active != nil && m.session.Template() == nil:
		m.info = active.Name + " complete! Check your plan with p"
	case active != nil:
		m.info = "Added " + v.Name + ". " + m.session.Guide().Label()
	default:
		m.info = "Added " + v.Name
	}
}

func (m *Model) setCategory(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > len(model.Categories) {
		return
	}
	c := model.Categories[n-1]
	if m.session.Template() != nil {
		m.info = "The template picks the category; press x to exit it"
		return
	}
	m.mutate("category "+c.Label(), func() bool { return m.session.SetCategory(c) })
	m.info = "Showing " + c.Label()
}

func nextSortMode(current model.SortMode) model.SortMode {
	for i, mode := range model.SortModes {
		if mode == current {
			return model.SortModes[(i+1)%len(model.SortModes)]
		}
	}
	return model.SortModes[0]
}

// Commands

func loadCatalogCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		msg, err := db.LoadCatalog(database)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return msg
	}
}

func resolveLocationCmd(provider location.Provider, req location.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		zone, err := provider.CurrentZone(ctx)
		if err != nil {
			return model.LocationFailedMsg{RequestID: req.ID, Generation: req.Generation, Err: err}
		}
		return model.LocationResolvedMsg{RequestID: req.ID, Generation: req.Generation, Zone: zone}
	}
}
