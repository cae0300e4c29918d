package ui

import (
	"strings"

	"dateplan/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, dragging bool, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenSpots:
		return renderSpotsHelp(width)
	case model.ScreenPlan:
		if dragging {
			return renderDragHelp(width)
		}
		return renderPlanHelp(width)
	case model.ScreenSpotDetail:
		return renderSpotDetailHelp(width)
	case model.ScreenTemplates:
		return renderTemplatesHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderSpotsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "add"),
		helpKey("i", "details"),
		helpKey("1-5", "category"),
		helpKey("o", "sort"),
		helpKey("L", "location"),
		helpKey("t", "templates"),
		helpKey("p", "plan"),
		helpKey("u/ctrl+r", "undo/redo"),
	}
	return renderHelpLine(keys, width)
}

func renderPlanHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("m", "move"),
		helpKey("d", "remove"),
		helpKey("x", "exit template"),
		helpKey("p", "spots"),
		helpKey("u/ctrl+r", "undo/redo"),
	}
	return renderHelpLine(keys, width)
}

func renderDragHelp(width int) string {
	keys := []string{
		helpKey("j/k", "choose position"),
		helpKey("enter", "drop"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderSpotDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("enter", "add to plan"),
	}
	return renderHelpLine(keys, width)
}

func renderTemplatesHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "start template"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next zone"),
		helpKey("shift+tab", "prev zone"),
		helpKey("ctrl+l", "use current location"),
		helpKey("enter", "apply"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "tabs"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / l / ← / →", "Switch tab"},
			{"p", "Toggle spots / plan"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"u / ctrl+r", "Undo / redo"},
			{"esc", "Cancel / close"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Spots"),
		helpSection([]helpItem{
			{"enter / space", "Add spot to plan (re-center if already added)"},
			{"i", "Spot details"},
			{"1-5", "All / dining / activity / nightlife / entertainment"},
			{"o", "Cycle sort: rating, price, distance, from last stop"},
			{"L", "Set location"},
			{"X", "Clear location"},
			{"tab / shift+tab", "Cycle active column"},
			{"/ then 1-8", "Jump to column"},
			{"s / S", "Sort active column asc/desc"},
			{"c / C", "Hide active column / show all"},
		}),
		titleSection("Plan"),
		helpSection([]helpItem{
			{"m", "Pick up stop, j/k to position, enter to drop"},
			{"d", "Remove stop"},
			{"t", "Start a template"},
			{"x", "Exit template, keep stops"},
		}),
		titleSection("Location"),
		helpSection([]helpItem{
			{"tab / shift+tab", "Cycle known zones"},
			{"ctrl+l", "Use current location"},
			{"enter", "Apply"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
