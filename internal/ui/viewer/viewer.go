// Package viewer is the interactive grid: one sheet at a time, a cell
// cursor, live filtering, per-column sort toggles, and search/copy actions
// on the selected cell. The selected-cell highlight is driven by the
// OverlayController so it tracks the cell across scrolling, resizing,
// filtering and sorting.
package viewer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/amedev/sheetscout/internal/browser"
	"github.com/amedev/sheetscout/internal/config"
	"github.com/amedev/sheetscout/internal/grid"
	"github.com/amedev/sheetscout/internal/search"
	"github.com/amedev/sheetscout/internal/ui/styles"
	"github.com/amedev/sheetscout/internal/util"
	"github.com/amedev/sheetscout/internal/workbook"
)

const colGap = 2 // spacing between rendered columns

type viewMode int

const (
	modeGrid viewMode = iota
	modeFilter
	modeText
)

// Options configures a viewer session.
type Options struct {
	Workbook  *workbook.Workbook
	Sheet     string // initial sheet; empty means the first one
	Filter    string // filter to apply on startup
	ConfigDir string
	Config    *config.Config
	Engines   search.Registry
	Logger    *log.Logger
}

// Model is the bubbletea model for the whole session.
type Model struct {
	wb       *workbook.Workbook
	sheets   []string
	sheetIdx int

	grid   *grid.Model
	widths []int

	cursor    int // selected view row
	colCursor int // selected column
	scrollX   int // horizontal scroll offset in cells
	scrollY   int // vertical scroll offset in rows
	width     int
	height    int
	ready     bool

	mode        viewMode
	filterInput textinput.Model
	textScroll  int

	overlay *OverlayController

	cfg       *config.Config
	cfgDir    string
	engines   search.Registry
	engineIdx int

	logger *log.Logger

	statusMsg   string
	statusUntil time.Time
}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Home       key.Binding
	End        key.Binding
	NextSheet  key.Binding
	PrevSheet  key.Binding
	Filter     key.Binding
	Sort       key.Binding
	Search     key.Binding
	SearchAlt  key.Binding
	Engine     key.Binding
	YankCell   key.Binding
	YankURL    key.Binding
	FullText   key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	ScrollUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "scroll down")),
	Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
	End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
	NextSheet:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sheet")),
	PrevSheet:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev sheet")),
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Sort:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort column")),
	Search:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search cell")),
	SearchAlt:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alt search")),
	Engine:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "cycle engine")),
	YankCell:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
	YankURL:    key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy search url")),
	FullText:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view cell")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// New builds the session model and loads the initial sheet.
func New(opts Options) (*Model, error) {
	sheets := opts.Workbook.SheetNames()
	if len(sheets) == 0 {
		return nil, util.ErrNoSheets
	}

	sheetIdx := 0
	if opts.Sheet != "" {
		found := false
		for i, name := range sheets {
			if name == opts.Sheet {
				sheetIdx = i
				found = true
				break
			}
		}
		if !found {
			return nil, util.SheetNotFoundError(opts.Sheet, sheets)
		}
	}

	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 200
	ti.Width = 36

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		wb:          opts.Workbook,
		sheets:      sheets,
		sheetIdx:    sheetIdx,
		filterInput: ti,
		cfg:         opts.Config,
		cfgDir:      opts.ConfigDir,
		engines:     opts.Engines,
		logger:      logger,
	}
	m.overlay = NewOverlayController(m.cellBounds)
	m.engineIdx = m.findEngine(opts.Config.General.DefaultEngine)

	if err := m.loadSheet(sheetIdx); err != nil {
		return nil, err
	}
	if opts.Filter != "" {
		m.filterInput.SetValue(opts.Filter)
		m.applyFilter(opts.Filter)
	}
	return m, nil
}

// Run launches the interactive viewer and blocks until the user quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) findEngine(name string) int {
	for i, e := range m.engines {
		if e.Name == name {
			return i
		}
	}
	return 0
}

func (m *Model) defaultEngine() string {
	return m.engines[m.engineIdx].Name
}

func (m *Model) altEngine() string {
	if _, ok := m.engines.Lookup(m.cfg.General.AltEngine); ok {
		return m.cfg.General.AltEngine
	}
	return m.engines[0].Name
}

// loadSheet replaces the grid with the named sheet's rows. On a read error
// the previous sheet stays on screen untouched.
func (m *Model) loadSheet(idx int) error {
	name := m.sheets[idx]
	raw, err := m.wb.SheetRows(name)
	if err != nil {
		return err
	}

	m.sheetIdx = idx
	m.grid = grid.Load(raw)
	m.filterInput.SetValue("")
	m.cursor = 0
	m.colCursor = 1
	if len(m.grid.Headers()) == 1 {
		m.colCursor = 0
	}
	m.scrollX = 0
	m.scrollY = 0
	m.mode = modeGrid
	m.recomputeWidths()
	m.overlay.SheetLoaded()
	m.logger.Debug("sheet loaded",
		"sheet", name,
		"rows", len(m.grid.AllRows()),
		"cols", len(m.grid.Headers()))
	return nil
}

func (m *Model) recomputeWidths() {
	m.widths = grid.ComputeWidths(m.grid.Headers(), m.grid.Rows(), measure, grid.DefaultSizerOptions())
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampScroll()
		m.overlay.Resized()
		return m, nil

	case statusClearMsg:
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeText:
			return m.updateText(msg)
		default:
			return m.updateGrid(msg)
		}
	}
	return m, nil
}

func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Filter):
		m.mode = modeFilter
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, keys.PageUp):
		m.moveCursor(-m.visibleRowCount(), 0)
	case key.Matches(msg, keys.PageDown):
		m.moveCursor(m.visibleRowCount(), 0)

	case key.Matches(msg, keys.ScrollUp):
		m.scrollViewport(-m.visibleRowCount() / 2)
	case key.Matches(msg, keys.ScrollDown):
		m.scrollViewport(m.visibleRowCount() / 2)

	case key.Matches(msg, keys.Home):
		m.cursor = 0
		m.scrollY = 0
		m.scrollX = 0
		m.afterCursorMove()
	case key.Matches(msg, keys.End):
		if n := len(m.grid.Rows()); n > 0 {
			m.cursor = n - 1
			m.ensureRowVisible()
			m.afterCursorMove()
		}

	case key.Matches(msg, keys.NextSheet):
		return m, m.switchSheet(1)
	case key.Matches(msg, keys.PrevSheet):
		return m, m.switchSheet(-1)

	case key.Matches(msg, keys.Sort):
		return m, m.sortCurrentColumn()

	case key.Matches(msg, keys.Search):
		return m, m.searchWithEngine(m.defaultEngine())
	case key.Matches(msg, keys.SearchAlt):
		return m, m.searchWithEngine(m.altEngine())
	case key.Matches(msg, keys.Engine):
		return m, m.cycleEngine()

	case key.Matches(msg, keys.YankCell):
		return m, m.yankCell()
	case key.Matches(msg, keys.YankURL):
		return m, m.yankSearchURL()

	case key.Matches(msg, keys.FullText):
		if m.selectedCellRaw() != "" {
			m.mode = modeText
			m.textScroll = 0
		}
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.mode = modeGrid
		m.applyFilter("")
		return m, nil
	case tea.KeyEnter:
		m.filterInput.Blur()
		m.mode = modeGrid
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter(m.filterInput.Value())
	return m, cmd
}

func (m *Model) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "v":
		m.mode = modeGrid
	case "up", "k":
		if m.textScroll > 0 {
			m.textScroll--
		}
	case "down", "j":
		m.textScroll++
	case "y":
		return m, m.yankCell()
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	rows := m.grid.Rows()
	if len(rows) == 0 {
		return
	}

	m.cursor += dRow
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}

	m.colCursor += dCol
	if m.colCursor < 0 {
		m.colCursor = 0
	}
	if max := len(m.grid.Headers()) - 1; m.colCursor > max {
		m.colCursor = max
	}

	m.ensureRowVisible()
	m.ensureColVisible()
	m.afterCursorMove()
}

// afterCursorMove re-establishes the selection reference at the cursor.
func (m *Model) afterCursorMove() {
	rows := m.grid.Rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		m.overlay.SelectionCleared()
		return
	}
	m.overlay.SelectionChanged(rows[m.cursor][0], m.colCursor)
}

// scrollViewport moves the viewport without moving the cursor, so the
// selected row can leave the visible area.
func (m *Model) scrollViewport(delta int) {
	m.scrollY += delta
	m.clampScroll()
	m.overlay.Scrolled()
}

func (m *Model) clampScroll() {
	maxY := len(m.grid.Rows()) - m.visibleRowCount()
	if maxY < 0 {
		maxY = 0
	}
	if m.scrollY > maxY {
		m.scrollY = maxY
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	if maxX := m.maxScrollX(); m.scrollX > maxX {
		m.scrollX = maxX
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
}

func (m *Model) ensureRowVisible() {
	visible := m.visibleRowCount()
	if visible <= 0 {
		visible = 1
	}
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	} else if m.cursor >= m.scrollY+visible {
		m.scrollY = m.cursor - visible + 1
	}
}

func (m *Model) ensureColVisible() {
	startX := m.colStartX(m.colCursor)
	endX := startX + m.widths[m.colCursor]
	viewport := m.viewportWidth()

	if startX < m.scrollX {
		m.scrollX = startX
	} else if endX > m.scrollX+viewport {
		m.scrollX = endX - viewport
	}
	m.clampScroll()
}

func (m *Model) colStartX(col int) int {
	x := 0
	for i := 0; i < col && i < len(m.widths); i++ {
		x += m.widths[i] + colGap
	}
	return x
}

func (m *Model) totalWidth() int {
	total := 0
	for _, w := range m.widths {
		total += w + colGap
	}
	return total
}

func (m *Model) maxScrollX() int {
	max := m.totalWidth() - m.viewportWidth()
	if max < 0 {
		return 0
	}
	return max
}

func (m *Model) viewportWidth() int {
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) visibleRowCount() int {
	// title + filter + header + separator above, status + help below
	count := m.height - 6
	if count < 1 {
		count = 1
	}
	return count
}

// cellBounds is the geometry query behind the overlay controller: the
// on-screen rectangle of (row number, column) in the grid area, or false
// when the cell is outside the viewport.
func (m *Model) cellBounds(rowNumber string, col int) (Rect, bool) {
	idx := m.grid.FindRowByNumber(rowNumber)
	if idx < 0 {
		return Rect{}, false
	}
	if idx < m.scrollY || idx >= m.scrollY+m.visibleRowCount() {
		return Rect{}, false
	}
	if col < 0 || col >= len(m.widths) {
		return Rect{}, false
	}
	x := m.colStartX(col) - m.scrollX
	w := m.widths[col]
	if x+w <= 0 || x >= m.viewportWidth() {
		return Rect{}, false
	}
	return Rect{X: x, Y: idx - m.scrollY, W: w, H: 1}, true
}

// applyFilter rebuilds the view and keeps the selection pinned to its row
// when that row survives; otherwise the selection goes away with the row.
func (m *Model) applyFilter(query string) {
	selRow, _ := m.overlay.Selection()

	m.grid.Filter(query)
	m.recomputeWidths()

	if selRow != "" {
		if idx := m.grid.FindRowByNumber(selRow); idx >= 0 {
			m.cursor = idx
			m.ensureRowVisible()
			m.overlay.Rerendered(true)
		} else {
			m.cursor = 0
			m.scrollY = 0
			m.overlay.Rerendered(false)
		}
	} else {
		if m.cursor >= len(m.grid.Rows()) {
			m.cursor = 0
			m.scrollY = 0
		}
	}
	m.clampScroll()
}

func (m *Model) sortCurrentColumn() tea.Cmd {
	if len(m.grid.Rows()) == 0 {
		return nil
	}
	selRow, _ := m.overlay.Selection()

	asc := m.grid.SortByColumn(m.colCursor)
	m.recomputeWidths()

	if selRow != "" {
		if idx := m.grid.FindRowByNumber(selRow); idx >= 0 {
			m.cursor = idx
			m.ensureRowVisible()
			m.overlay.Rerendered(true)
		} else {
			m.overlay.Rerendered(false)
		}
	}
	m.clampScroll()

	dir := "descending"
	if asc {
		dir = "ascending"
	}
	return m.setStatus(fmt.Sprintf("Sorted by %s (%s)", m.grid.Headers()[m.colCursor], dir))
}

func (m *Model) switchSheet(delta int) tea.Cmd {
	if len(m.sheets) < 2 {
		return nil
	}
	idx := (m.sheetIdx + delta + len(m.sheets)) % len(m.sheets)
	if err := m.loadSheet(idx); err != nil {
		m.logger.Warn("sheet load failed", "sheet", m.sheets[idx], "err", err)
		return m.setStatus(styles.ErrorMsg(fmt.Sprintf("cannot load sheet %s", m.sheets[idx])))
	}
	return m.setStatus(fmt.Sprintf("Sheet: %s", m.sheets[idx]))
}

func (m *Model) selectedCellRaw() string {
	rows := m.grid.Rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return ""
	}
	row := rows[m.cursor]
	if m.colCursor < 0 || m.colCursor >= len(row) {
		return ""
	}
	return row[m.colCursor]
}

func (m *Model) selectedCellQuery() string {
	return search.Normalize(m.selectedCellRaw())
}

func (m *Model) searchWithEngine(engine string) tea.Cmd {
	q := m.selectedCellQuery()
	if q == "" {
		return m.setStatus("Nothing to search: empty cell")
	}
	url := search.BuildURL(engine, q, m.engines)
	if err := browser.OpenURL(url); err != nil {
		m.logger.Warn("browser open failed", "err", err)
		return m.setStatus(styles.ErrorMsg("could not open browser"))
	}
	m.logger.Info("search opened", "engine", engine, "chars", len(q))
	return m.setStatus(fmt.Sprintf("Searching %s: %s", engine, util.Truncate(q, 40)))
}

// cycleEngine advances the default engine and persists the choice. A failed
// save is logged and ignored; the session keeps the new engine in memory.
func (m *Model) cycleEngine() tea.Cmd {
	m.engineIdx = (m.engineIdx + 1) % len(m.engines)
	m.cfg.General.DefaultEngine = m.defaultEngine()
	if err := m.cfg.Save(config.ConfigPath(m.cfgDir)); err != nil {
		m.logger.Warn("config save failed", "err", err)
	}
	return m.setStatus(fmt.Sprintf("Default engine: %s", m.defaultEngine()))
}

func (m *Model) yankCell() tea.Cmd {
	text := m.selectedCellRaw()
	if text == "" {
		return m.setStatus("Nothing to copy: empty cell")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return m.setStatus(styles.ErrorMsg(fmt.Sprintf("clipboard: %s", err)))
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", util.Truncate(flatten.Replace(text), 40)))
}

func (m *Model) yankSearchURL() tea.Cmd {
	q := m.selectedCellQuery()
	if q == "" {
		return m.setStatus("Nothing to copy: empty cell")
	}
	url := search.BuildURL(m.defaultEngine(), q, m.engines)
	if err := clipboard.WriteAll(url); err != nil {
		return m.setStatus(styles.ErrorMsg(fmt.Sprintf("clipboard: %s", err)))
	}
	return m.setStatus("Copied search URL")
}

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.mode == modeText {
		return m.viewFullText()
	}

	var sb strings.Builder

	sb.WriteString(m.titleLine())
	sb.WriteString("\n")

	switch {
	case m.mode == modeFilter:
		sb.WriteString(fmt.Sprintf("/%s\n", m.filterInput.View()))
	case m.grid.Query() != "":
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("filter: %s\n", m.grid.Query())))
	default:
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderGrid())

	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.helpLine())

	return sb.String()
}

func (m *Model) titleLine() string {
	title := fmt.Sprintf("%s / %s", m.wb.Path(), m.sheets[m.sheetIdx])
	line := styles.Bold.Render(title)
	if len(m.sheets) > 1 {
		line += styles.MutedMsg(fmt.Sprintf("  [sheet %d/%d]", m.sheetIdx+1, len(m.sheets)))
	}
	return line
}

func (m *Model) renderGrid() string {
	headers := m.grid.Headers()
	if len(headers) <= 1 && len(m.grid.AllRows()) == 0 {
		return styles.MutedMsg("(empty sheet)") + "\n"
	}

	var sb strings.Builder
	viewport := m.viewportWidth()

	sb.WriteString(applyViewport(m.buildHeaderLine(), m.scrollX, viewport))
	sb.WriteString("\n")
	sb.WriteString(applyViewport(m.buildSeparatorLine(), m.scrollX, viewport))
	sb.WriteString("\n")

	rows := m.grid.Rows()
	end := m.scrollY + m.visibleRowCount()
	if end > len(rows) {
		end = len(rows)
	}

	_, overlayVisible := m.overlay.Rect()
	query := strings.ToLower(strings.TrimSpace(m.grid.Query()))

	for i := m.scrollY; i < end; i++ {
		line := m.buildRowLine(rows[i], i, i == m.cursor, overlayVisible, query)
		sb.WriteString(applyViewport(line, m.scrollX, viewport))
		sb.WriteString("\n")
	}

	// scroll indicators
	var indicators []string
	if m.scrollX > 0 {
		indicators = append(indicators, "◀")
	}
	if m.scrollX+viewport < m.totalWidth() {
		indicators = append(indicators, "▶")
	}
	if m.scrollY > 0 {
		indicators = append(indicators, "▲")
	}
	if end < len(rows) {
		indicators = append(indicators, "▼")
	}
	if len(indicators) > 0 {
		sb.WriteString(styles.MutedMsg(strings.Join(indicators, " ")))
	}

	return sb.String()
}

func (m *Model) buildHeaderLine() string {
	var sb strings.Builder
	for i, h := range m.grid.Headers() {
		cell := padOrTruncate(h, m.widths[i])
		if i == m.colCursor {
			sb.WriteString(styles.HelpKey.Render(cell))
		} else {
			sb.WriteString(styles.HeaderStyle.Render(cell))
		}
		sb.WriteString(strings.Repeat(" ", colGap))
	}
	return sb.String()
}

func (m *Model) buildSeparatorLine() string {
	var sb strings.Builder
	for i := range m.grid.Headers() {
		sep := strings.Repeat("─", m.widths[i])
		if i == m.colCursor {
			sb.WriteString(styles.HelpKey.Render(sep))
		} else {
			sb.WriteString(styles.MutedStyle.Render(sep))
		}
		sb.WriteString(strings.Repeat(" ", colGap))
	}
	return sb.String()
}

func (m *Model) buildRowLine(row []string, viewIdx int, selectedRow, overlayVisible bool, query string) string {
	var sb strings.Builder
	zebra := viewIdx%2 == 1

	for i := range m.grid.Headers() {
		var val string
		if i < len(row) {
			val = flatten.Replace(row[i])
		}
		cell := padOrTruncate(val, m.widths[i])

		switch {
		case selectedRow && i == m.colCursor && overlayVisible:
			sb.WriteString(styles.SelectedCellStyle.Render(cell))
		case selectedRow:
			sb.WriteString(styles.SelectedRowStyle.Render(cell))
		case query != "" && strings.Contains(strings.ToLower(val), query):
			sb.WriteString(styles.WarningStyle.Render(cell))
		case zebra:
			sb.WriteString(styles.ZebraStyle.Render(cell))
		default:
			sb.WriteString(cell)
		}
		sb.WriteString(strings.Repeat(" ", colGap))
	}
	return sb.String()
}

func (m *Model) statusLine() string {
	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		return styles.SuccessMsg(m.statusMsg)
	}

	total := len(m.grid.AllRows())
	shown := len(m.grid.Rows())
	line := fmt.Sprintf("rows %d/%d", shown, total)

	if selRow, selCol := m.overlay.Selection(); selRow != "" && selCol >= 0 {
		header := "?"
		if selCol < len(m.grid.Headers()) {
			header = m.grid.Headers()[selCol]
		}
		preview := m.selectedCellQuery()
		line += fmt.Sprintf("   R%s %s  %d chars", selRow, header, len([]rune(preview)))
		if preview != "" {
			line += "  " + util.Truncate(preview, 60)
		}
	}

	line += fmt.Sprintf("   engine: %s", m.defaultEngine())
	return styles.InfoMsg(line)
}

func (m *Model) helpLine() string {
	if m.mode == modeFilter {
		return styles.MutedMsg("enter confirm  esc clear")
	}
	return styles.MutedMsg("↑↓←→ nav  / filter  o sort  tab sheet  enter search  a alt  e engine  y copy  Y url  v view  q quit")
}

func (m *Model) viewFullText() string {
	raw := m.selectedCellRaw()
	lines := strings.Split(raw, "\n")

	height := m.height - 4
	if height < 1 {
		height = 1
	}
	if m.textScroll > len(lines)-1 {
		m.textScroll = len(lines) - 1
	}
	if m.textScroll < 0 {
		m.textScroll = 0
	}
	end := m.textScroll + height
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	sb.WriteString(styles.Bold.Render("Cell contents"))
	selRow, selCol := m.overlay.Selection()
	if selRow != "" && selCol >= 0 && selCol < len(m.grid.Headers()) {
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("  R%s %s", selRow, m.grid.Headers()[selCol])))
	}
	sb.WriteString("\n\n")
	for _, l := range lines[m.textScroll:end] {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.MutedMsg("j/k scroll  y copy  esc close"))
	return sb.String()
}
