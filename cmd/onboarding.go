package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"dateplan/internal/location"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type OnboardingSettings struct {
	Completed  bool   `json:"completed"`
	GeoEnabled bool   `json:"geo_enabled"`
	HomeZone   string `json:"home_zone,omitempty"`
}

func onboardingPath(configDir string) string {
	return filepath.Join(configDir, "onboarding.json")
}

func loadOnboardingSettings(configDir string) (OnboardingSettings, error) {
	path := onboardingPath(configDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return OnboardingSettings{}, nil
		}
		return OnboardingSettings{}, err
	}

	var settings OnboardingSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return OnboardingSettings{}, err
	}
	return settings, nil
}

func saveOnboardingSettings(configDir string, settings OnboardingSettings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(onboardingPath(configDir), data, 0644)
}

func shouldRunOnboarding(settings OnboardingSettings) bool {
	if settings.Completed {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type onboardingStep int

const (
	stepGeo onboardingStep = iota
	stepZone
	stepDone
)

type onboardingModel struct {
	step      onboardingStep
	enable    bool
	zones     []string
	zone      int // -1 while the input holds free text
	zoneInput textinput.Model
	settings  OnboardingSettings
	status    string
	width     int
	height    int
}

var (
	obColorSurface = lipgloss.Color("#2A332C")
	obColorMuted   = lipgloss.Color("#7E8C80")
	obColorText    = lipgloss.Color("#D6E0D3")
	obColorAccent  = lipgloss.Color("#8FA082")
	obColorDanger  = lipgloss.Color("#f38ba8")

	obTitleStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabInactive = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 2)

	obTabActive = lipgloss.NewStyle().
			Foreground(obColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorMuted).
			Padding(1, 2)

	obInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorAccent).
			Padding(0, 1)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(obColorMuted)

	obOptionStyle = lipgloss.NewStyle().
			Foreground(obColorText)

	obOptionSelected = lipgloss.NewStyle().
				Foreground(obColorAccent).
				Bold(true)

	obWarnStyle = lipgloss.NewStyle().
			Foreground(obColorDanger)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(obColorMuted)
)

func newOnboardingModel(zones []string) onboardingModel {
	in := textinput.New()
	in.Placeholder = "Leave empty to start without a location"
	in.CharLimit = 64
	in.Prompt = "zone> "
	in.TextStyle = lipgloss.NewStyle().Foreground(obColorText)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(obColorMuted)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(obColorText).Background(obColorAccent)
	in.Focus()

	return onboardingModel{
		step:      stepGeo,
		enable:    true,
		zones:     zones,
		zone:      -1,
		zoneInput: in,
		settings: OnboardingSettings{
			Completed:  true,
			GeoEnabled: true,
		},
	}
}

func (m onboardingModel) Init() tea.Cmd { return nil }

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.step {
		case stepGeo:
			switch msg.String() {
			case "y", "Y":
				m.enable = true
				return m.nextStep()
			case "n", "N":
				m.enable = false
				return m.nextStep()
			case "up", "k", "left", "h":
				m.enable = true
				return m, nil
			case "down", "j", "right", "l":
				m.enable = false
				return m, nil
			case "enter":
				return m.nextStep()
			case "ctrl+c", "q":
				m.settings.GeoEnabled = false
				m.status = "Setup canceled. Current location lookups disabled."
				m.step = stepDone
				return m, tea.Quit
			default:
				return m, nil
			}
		case stepZone:
			switch msg.String() {
			case "enter":
				zone := location.Snap(m.zoneInput.Value(), m.zones)
				if zone != "" && len(m.zones) > 0 && !slices.Contains(m.zones, zone) {
					m.status = fmt.Sprintf("Unknown zone %q. Press tab to pick a known one.", zone)
					return m, nil
				}
				m.settings.HomeZone = zone
				m.status = m.summary()
				m.step = stepDone
				return m, tea.Quit
			case "tab", "down":
				m.cycleZone(1)
				return m, nil
			case "shift+tab", "up":
				m.cycleZone(-1)
				return m, nil
			case "esc":
				m.settings.HomeZone = ""
				m.status = m.summary()
				m.step = stepDone
				return m, tea.Quit
			case "ctrl+c":
				m.status = "Setup canceled. " + m.summary()
				m.step = stepDone
				return m, tea.Quit
			}
			var cmd tea.Cmd
			before := m.zoneInput.Value()
			m.zoneInput, cmd = m.zoneInput.Update(msg)
			if m.zoneInput.Value() != before {
				m.zone = -1
				m.status = ""
			}
			return m, cmd
		}
	}
	return m, nil
}

func (m onboardingModel) nextStep() (tea.Model, tea.Cmd) {
	m.settings.GeoEnabled = m.enable
	m.status = ""
	m.step = stepZone
	return m, nil
}

func (m *onboardingModel) cycleZone(step int) {
	if len(m.zones) == 0 {
		return
	}
	if m.zone < 0 {
		if step > 0 {
			m.zone = 0
		} else {
			m.zone = len(m.zones) - 1
		}
	} else {
		m.zone = (m.zone + step + len(m.zones)) % len(m.zones)
	}
	m.zoneInput.SetValue(m.zones[m.zone])
	m.zoneInput.CursorEnd()
	m.status = ""
}

func (m onboardingModel) summary() string {
	var parts []string
	if m.settings.GeoEnabled {
		parts = append(parts, "Current location lookups enabled.")
	} else {
		parts = append(parts, "Current location lookups disabled.")
	}
	if m.settings.HomeZone != "" {
		parts = append(parts, "Planning from "+m.settings.HomeZone+".")
	} else {
		parts = append(parts, "No home zone set.")
	}
	return strings.Join(parts, " ")
}

func (m onboardingModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)

	contentHeight := height - 6
	if contentHeight < 8 {
		contentHeight = 8
	}
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)

	return lipgloss.NewStyle().
		Foreground(obColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m onboardingModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("dateplan") + " " + obMutedStyle.Render("› Setup")
	right := obMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m onboardingModel) renderTabs(width int) string {
	geoTab := obTabInactive.Render("Location")
	zoneTab := obTabInactive.Render("Home Zone")
	if m.step == stepGeo {
		geoTab = obTabActive.Render("Location")
	}
	if m.step == stepZone {
		zoneTab = obTabActive.Render("Home Zone")
	}
	return obTabsStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, "  ", geoTab, zoneTab))
}

func (m onboardingModel) renderFooter(width int) string {
	switch m.step {
	case stepGeo:
		return obFooterStyle.Width(width).Render("↑↓/jk to navigate  y/n enter to confirm  q cancel")
	case stepZone:
		return obFooterStyle.Width(width).Render("tab cycle zones  enter save  esc skip")
	default:
		return obFooterStyle.Width(width).Render("Setup complete")
	}
}

func (m onboardingModel) renderContent(width, height int) string {
	cardWidth := min(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepGeo:
		question := obLabelStyle.Render("Look up your current location when you press ctrl+l?")
		on := "Enable IP geolocation"
		off := "Disable IP geolocation"

		var onDisplay, offDisplay string
		if m.enable {
			onDisplay = "  " + obOptionSelected.Render("→ "+on)
			offDisplay = "    " + obOptionStyle.Render(off)
		} else {
			onDisplay = "    " + obOptionStyle.Render(on)
			offDisplay = "  " + obOptionSelected.Render("→ "+off)
		}

		body = lipgloss.JoinVertical(
			lipgloss.Left,
			question,
			"",
			onDisplay,
			offDisplay,
			"",
			obMutedStyle.Render("Lookups send one request to an IP geolocation service."),
			obMutedStyle.Render("You can change this later in ~/.dateplan/onboarding.json"),
		)
	case stepZone:
		input := obInputStyle.Width(max(30, cardWidth-14)).Render(m.zoneInput.View())
		var chips []string
		for i, z := range m.zones {
			if i == m.zone {
				chips = append(chips, obOptionSelected.Render(z))
			} else {
				chips = append(chips, obMutedStyle.Render(z))
			}
		}
		lines := []string{
			obLabelStyle.Render("Where do your dates usually start?"),
			"",
			obMutedStyle.Render("Spots are filtered to within 20 miles of this zone."),
			"",
			input,
		}
		if len(chips) > 0 {
			lines = append(lines, "", strings.Join(chips, obMutedStyle.Render("  ·  ")))
		}
		if m.status != "" {
			lines = append(lines, "", obWarnStyle.Render(m.status))
		}
		lines = append(lines, "", obMutedStyle.Render("Press Enter to save, Esc to skip."))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	default:
		msg := obMutedStyle.Render(m.status)
		if strings.Contains(strings.ToLower(m.status), "canceled") {
			msg = obWarnStyle.Render(m.status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Onboarding Complete"), "", msg)
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

func runOnboarding(configDir string, zones []string) (OnboardingSettings, error) {
	model := newOnboardingModel(zones)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return OnboardingSettings{}, fmt.Errorf("onboarding tui failed: %w", err)
	}
	m, ok := finalModel.(onboardingModel)
	if !ok {
		return OnboardingSettings{}, fmt.Errorf("unexpected onboarding model type")
	}
	if err := saveOnboardingSettings(configDir, m.settings); err != nil {
		return OnboardingSettings{}, err
	}
	return m.settings, nil
}
