package ui

import (
	"fmt"
	"sort"
	"strings"

	"dateplan/internal/distance"
	"dateplan/internal/model"
	"dateplan/internal/util"

	"github.com/charmbracelet/lipgloss"
)

type spotColumn struct {
	key    string
	label  string
	width  int
	hidden bool
}

// SpotsModel is the candidate list. Rows arrive already filtered and
// ordered; a column sort only reorders the view.
type SpotsModel struct {
	allRows []model.Candidate
	rows    []model.Candidate
	cursor  int
	offset  int

	viewportHeight int

	hasReference bool
	hasLast      bool
	inPlan       map[string]bool

	columns      []spotColumn
	activeColumn int
	sortKey      string
	sortDesc     bool
}

// NewSpotsModel creates an empty spots table.
func NewSpotsModel() *SpotsModel {
	return &SpotsModel{
		inPlan: make(map[string]bool),
		columns: []spotColumn{
			{key: "name", label: "name", width: 22},
			{key: "category", label: "category", width: 13},
			{key: "zone", label: "zone", width: 13},
			{key: "price", label: "price", width: 6},
			{key: "rating", label: "rating", width: 7},
			{key: "time", label: "time", width: 12},
			{key: "distance", label: "distance", width: 9},
			{key: "last", label: "from last", width: 9},
		},
	}
}

// SetRows replaces the candidates, keeping the cursor on the same venue
// when it is still listed.
func (m *SpotsModel) SetRows(rows []model.Candidate, hasReference, hasLast bool, planned []model.Venue) {
	var selectedID string
	if m.cursor < len(m.rows) {
		selectedID = m.rows[m.cursor].ID
	}

	m.allRows = append([]model.Candidate(nil), rows...)
	m.hasReference = hasReference
	m.hasLast = hasLast
	m.inPlan = make(map[string]bool, len(planned))
	for _, v := range planned {
		m.inPlan[v.ID] = true
	}
	m.rebuild()

	for i, r := range m.rows {
		if r.ID == selectedID {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
}

// Selected returns the venue under the cursor.
func (m *SpotsModel) Selected() (model.Candidate, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return model.Candidate{}, false
	}
	return m.rows[m.cursor], true
}

// Len is the number of listed candidates.
func (m *SpotsModel) Len() int {
	return len(m.rows)
}

func (m *SpotsModel) ApplyPrefs(prefs TablePrefs) {
	if prefs.SortKey != "" {
		m.sortKey = prefs.SortKey
		m.sortDesc = prefs.SortDesc
	}
	hidden := make(map[string]bool, len(prefs.HiddenColumns))
	for _, c := range prefs.HiddenColumns {
		hidden[c] = true
	}
	for i := range m.columns {
		m.columns[i].hidden = hidden[m.columns[i].key]
	}
	if prefs.ActiveColumn != "" {
		for i, c := range m.columns {
			if c.key == prefs.ActiveColumn {
				m.activeColumn = i
				break
			}
		}
	}
	m.ensureVisibleActiveColumn()
	m.rebuild()
}

func (m *SpotsModel) Prefs() TablePrefs {
	var hidden []string
	for _, c := range m.columns {
		if c.hidden {
			hidden = append(hidden, c.key)
		}
	}
	return TablePrefs{
		SortKey:       m.sortKey,
		SortDesc:      m.sortDesc,
		HiddenColumns: hidden,
		ActiveColumn:  m.columns[m.activeColumn].key,
	}
}

func (m *SpotsModel) rebuild() {
	rows := append([]model.Candidate(nil), m.allRows...)

	if m.sortKey != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			left := strings.ToLower(m.getValue(rows[i], m.sortKey))
			right := strings.ToLower(m.getValue(rows[j], m.sortKey))
			if left == right {
				return false
			}
			if m.sortDesc {
				return left > right
			}
			return left < right
		})
	}

	m.rows = rows
	m.clampCursor()
}

func (m *SpotsModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// getValue returns a sortable string for a column.
func (m *SpotsModel) getValue(row model.Candidate, key string) string {
	switch key {
	case "name":
		return row.Name
	case "category":
		return string(row.Category)
	case "zone":
		return row.Zone
	case "price":
		return fmt.Sprintf("%d", row.PriceTier)
	case "rating":
		return fmt.Sprintf("%04.2f", row.Rating)
	case "time":
		return row.EstimatedTime
	case "distance":
		return fmt.Sprintf("%07.2f", row.FromReference)
	case "last":
		return fmt.Sprintf("%07.2f", row.FromLast)
	default:
		return ""
	}
}

func (m *SpotsModel) visibleColumnIndexes() []int {
	var idxs []int
	for i, c := range m.columns {
		if !c.hidden {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (m *SpotsModel) ensureVisibleActiveColumn() {
	if !m.columns[m.activeColumn].hidden {
		return
	}
	for i := range m.columns {
		if !m.columns[i].hidden {
			m.activeColumn = i
			return
		}
	}
	m.columns[0].hidden = false
	m.activeColumn = 0
}

func (m *SpotsModel) NextColumn() {
	start := m.activeColumn
	for {
		m.activeColumn = (m.activeColumn + 1) % len(m.columns)
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *SpotsModel) PrevColumn() {
	start := m.activeColumn
	for {
		m.activeColumn--
		if m.activeColumn < 0 {
			m.activeColumn = len(m.columns) - 1
		}
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *SpotsModel) JumpToColumn(number int) bool {
	if number < 1 || number > len(m.columns) {
		return false
	}
	idx := number - 1
	if m.columns[idx].hidden {
		return false
	}
	m.activeColumn = idx
	return true
}

func (m *SpotsModel) SortActiveColumn(desc bool) {
	m.sortKey = m.columns[m.activeColumn].key
	m.sortDesc = desc
	m.rebuild()
}

// ClearColumnSort drops the view-level sort so the session order shows.
func (m *SpotsModel) ClearColumnSort() bool {
	if m.sortKey == "" {
		return false
	}
	m.sortKey = ""
	m.sortDesc = false
	m.rebuild()
	return true
}

func (m *SpotsModel) HideActiveColumn() bool {
	if len(m.visibleColumnIndexes()) <= 1 {
		return false
	}
	m.columns[m.activeColumn].hidden = true
	m.ensureVisibleActiveColumn()
	return true
}

func (m *SpotsModel) ShowAllColumns() {
	for i := range m.columns {
		m.columns[i].hidden = false
	}
}

func (m *SpotsModel) TableMeta() string {
	col := strings.ToUpper(m.columns[m.activeColumn].label)
	parts := []string{fmt.Sprintf("col %s", col)}
	if m.sortKey != "" {
		order := "asc"
		if m.sortDesc {
			order = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort %s %s", strings.ToUpper(m.sortKey), order))
	}
	return strings.Join(parts, "  ·  ")
}

func (m *SpotsModel) cell(row model.Candidate, col spotColumn) string {
	switch col.key {
	case "name":
		name := util.TruncateString(row.Name, col.width-2)
		if m.inPlan[row.ID] {
			return InPlanStyle.Render("✓ ") + name
		}
		return "  " + name
	case "category":
		return CategoryStyle(row.Category).Render(row.Category.Label())
	case "zone":
		return util.TruncateString(row.Zone, col.width)
	case "price":
		return util.FormatPrice(row.PriceTier)
	case "rating":
		return lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatRatingWithStar(row.Rating))
	case "time":
		if row.EstimatedTime == "" {
			return "—"
		}
		return util.TruncateString(row.EstimatedTime, col.width)
	case "distance":
		if !m.hasReference {
			return "—"
		}
		return util.FormatMiles(row.FromReference, distance.Sentinel)
	case "last":
		if !m.hasLast {
			return "—"
		}
		return util.FormatMiles(row.FromLast, distance.Sentinel)
	default:
		return ""
	}
}

// View renders the spots list.
func (m *SpotsModel) View(width, height int, emptyMsg string) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(emptyMsg)
	}

	visible := m.visibleColumnIndexes()
	widths := make([]int, 0, len(visible))
	headers := make([]string, 0, len(visible))
	totalFixed := 0
	for _, idx := range visible {
		col := m.columns[idx]
		label := formatHeaderLabel(col.label)
		if idx == m.activeColumn {
			label = renderActiveHeaderLabel(label)
		}
		if m.sortKey == col.key {
			if m.sortDesc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		cellWidth := max(col.width+2, lipgloss.Width(label)+2)
		totalFixed += cellWidth
		widths = append(widths, cellWidth)
		headers = append(headers, label)
	}
	if len(widths) > 0 {
		sepTotal := (len(widths) - 1) * tableSeparatorWidth()
		extra := width - totalFixed - sepTotal - 2
		if extra > 0 {
			widths[len(widths)-1] += extra
		}
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 3
	m.viewportHeight = visibleHeight
	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		row := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		cells := make([]string, 0, len(visible))
		for _, idx := range visible {
			cells = append(cells, m.cell(row, m.columns[idx]))
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	meta := m.TableMeta()
	if meta != "" {
		meta = "  ·  " + meta
	}
	rowPos := fmt.Sprintf("  ·  row %d/%d", m.cursor+1, len(m.rows))
	status := StatusBarStyle.Render(fmt.Sprintf("%d spots%s%s", len(m.rows), rowPos, meta))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		spacer,
		status,
	)
}

func (m *SpotsModel) pageHeight() int {
	if m.viewportHeight == 0 {
		return 10
	}
	return m.viewportHeight
}

// MoveDown moves the cursor down.
func (m *SpotsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		if m.cursor >= m.offset+m.pageHeight() {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *SpotsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first item.
func (m *SpotsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last item.
func (m *SpotsModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
		if vh := m.pageHeight(); m.cursor >= vh {
			m.offset = m.cursor - vh + 1
		}
	}
}

// HalfPageDown moves down half a page.
func (m *SpotsModel) HalfPageDown(pageSize int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += pageSize / 2
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if vh := m.pageHeight(); m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *SpotsModel) HalfPageUp(pageSize int) {
	m.cursor -= pageSize / 2
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}
