package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkondratov/algo/internal/core"
	"github.com/nkondratov/algo/internal/game"
	"github.com/nkondratov/algo/internal/ranking"
)

// Layout constants. The board coordinate space matches the generator's
// nominal 40x80 chalkboard; tile positions are scaled into the actual
// terminal area at render time.
const (
	headerLines = 1
	panelLines  = 3
	helpLines   = 1
	boardUnitsH = 40
	boardUnitsW = 80

	minBoardHeight = 5
	rankingLimit   = 100
)

// tileBox is a laid-out visible tile: its screen rectangle for drawing and
// mouse hit-testing.
type tileBox struct {
	id       int
	label    string
	rect     core.Rect
	selected bool
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session *game.Session
	store   *ranking.Store
	screen  *core.Screen

	keys         KeyMap
	help         help.Model
	nameInput    textinput.Model
	rankingTable table.Model

	width  int
	height int

	cursor    int // index into the visible tile list
	status    string
	submitted bool
	quitting  bool
}

// NewModel creates a model for the given session. The store may be nil, in
// which case submission is disabled and the ranking page shows a notice.
func NewModel(session *game.Session, store *ranking.Store, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "enter your name"
	ti.CharLimit = 0 // the game enforces no length limit
	ti.Width = 24

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:   session,
		store:     store,
		screen:    core.NewScreen(width, minBoardHeight),
		keys:      DefaultKeyMap(),
		help:      h,
		nameInput: ti,
		width:     width,
		height:    height,
	}
	m.rankingTable = m.newRankingTable()
	m.refreshRanking()
	return m
}

// newRankingTable builds the ranking table in the current dimensions.
func (m *Model) newRankingTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 20},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - headerLines - helpLines - 3
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refreshRanking reloads the ranking table from the store.
func (m *Model) refreshRanking() {
	if m.store == nil {
		return
	}

	entries, err := m.store.Top(rankingLimit)
	if err != nil {
		m.status = fmt.Sprintf("ranking unavailable: %v", err)
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = "(anonymous)"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.rankingTable.SetRows(rows)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rankingTable = m.newRankingTable()
		m.refreshRanking()
		return m, nil
	}

	return m, nil
}

// apply dispatches an action to the session, surfacing any error in the
// status line. Under normal play the UI only offers valid tiles, so an
// error here points at a platform bug rather than player input.
func (m *Model) apply(a game.Action) {
	if err := m.session.Apply(a); err != nil {
		m.status = err.Error()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the name input is focused most keys are text; quitting stays on
	// ctrl+c only so names can contain the letter q.
	if m.nameInput.Focused() {
		return m.handleNameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Page):
		m.togglePage()
		return m, nil
	}

	if m.session.Page() == game.PageRanking {
		var cmd tea.Cmd
		m.rankingTable, cmd = m.rankingTable.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Next):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Select):
		m.selectAtCursor()

	case key.Matches(msg, m.keys.Rollback):
		m.apply(game.Rollback{})
		m.status = "undo is not available yet"
	}

	// Once the board is finished the name input takes focus for submission.
	if m.session.Finished() && !m.submitted {
		m.nameInput.Focus()
	}

	return m, nil
}

// handleNameKey routes keys into the name input during submission.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.nameInput.Blur()
		m.togglePage()
		return m, nil

	case "enter":
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)

	// Every text change reaches the session verbatim, keystroke by
	// keystroke, not just on submit.
	m.apply(game.SetPlayerName{Name: m.nameInput.Value()})

	return m, cmd
}

// handleMouse processes mouse clicks on the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.session.Page() != game.PagePlay || m.session.Finished() {
		return m, nil
	}

	// Translate terminal coordinates into board screen coordinates.
	x := msg.X
	y := msg.Y - headerLines

	v := m.session.View()
	boxes := m.layoutTiles(v)
	for i, b := range boxes {
		if b.rect.Contains(x, y) {
			m.cursor = i
			m.apply(game.SelectTile{ID: b.id})
			m.clampCursor()
			if m.session.Finished() && !m.submitted {
				m.nameInput.Focus()
			}
			return m, nil
		}
	}

	return m, nil
}

// togglePage switches between the Play and Ranking pages.
func (m *Model) togglePage() {
	if m.session.Page() == game.PagePlay {
		m.apply(game.Navigate{Page: game.PageRanking})
		m.refreshRanking()
	} else {
		m.apply(game.Navigate{Page: game.PagePlay})
		if m.session.Finished() && !m.submitted {
			m.nameInput.Focus()
		}
	}
}

// moveCursor cycles the keyboard cursor through the visible tiles.
func (m *Model) moveCursor(delta int) {
	n := len(m.session.View().Tiles)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// clampCursor keeps the cursor valid as tiles are consumed.
func (m *Model) clampCursor() {
	n := len(m.session.View().Tiles)
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// selectAtCursor dispatches a selection for the tile under the cursor.
func (m *Model) selectAtCursor() {
	v := m.session.View()
	if v.Finished || len(v.Tiles) == 0 {
		return
	}
	if m.cursor >= len(v.Tiles) {
		m.cursor = len(v.Tiles) - 1
	}
	m.apply(game.SelectTile{ID: v.Tiles[m.cursor].ID})
	m.clampCursor()
}

// submit hands (playerName, score) to the ranking collaborator.
func (m *Model) submit() {
	if m.submitted || !m.session.Finished() {
		return
	}

	name := m.nameInput.Value()
	m.apply(game.SetPlayerName{Name: name})
	m.apply(game.SubmitScore{})

	score, ok := m.session.Score()
	if !ok {
		return
	}

	if m.store == nil {
		m.status = "ranking is unavailable, score not submitted"
		return
	}

	if _, err := m.store.Save(name, score); err != nil {
		m.status = fmt.Sprintf("could not submit score: %v", err)
		return
	}

	m.submitted = true
	m.nameInput.Blur()
	m.apply(game.Navigate{Page: game.PageRanking})
	m.refreshRanking()
}

// boardHeight returns the rows available for the board itself.
func (m *Model) boardHeight() int {
	h := m.height - headerLines - panelLines - helpLines
	if h < minBoardHeight {
		h = minBoardHeight
	}
	return h
}

// layoutTiles scales tile positions from board units into the current
// screen area, one box per visible tile.
func (m *Model) layoutTiles(v game.BoardView) []tileBox {
	area := core.NewRect(0, 0, m.width, m.boardHeight())
	boxes := make([]tileBox, 0, len(v.Tiles))

	for _, tv := range v.Tiles {
		label := strconv.Itoa(tv.Value)

		row := area.Y + 1 + tv.Pos.X*(area.H-2)/boardUnitsH
		col := area.X + 1 + tv.Pos.Y*(area.W-2)/boardUnitsW
		row = core.Clamp(row, area.Y+1, area.Bottom()-2)
		col = core.Clamp(col, area.X+1, core.Max(area.X+1, area.Right()-1-len(label)))

		boxes = append(boxes, tileBox{
			id:       tv.ID,
			label:    label,
			rect:     core.NewRect(col, row, len(label), 1),
			selected: tv.Selected,
		})
	}
	return boxes
}

// renderBoard draws the chalkboard with all visible tiles.
func (m *Model) renderBoard() string {
	m.screen.Resize(m.width, m.boardHeight())
	m.screen.Clear()

	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	m.screen.DrawBox(area)

	v := m.session.View()
	boxes := m.layoutTiles(v)
	for i, b := range boxes {
		color := core.ColorGray
		if b.selected {
			color = core.ColorYellow
		}
		if i == m.cursor && !v.Finished {
			if !b.selected {
				color = core.ColorWhite
			}
			m.screen.SetColored(b.rect.X-1, b.rect.Y, '›', core.ColorWhite)
		}
		m.screen.DrawTextColored(b.rect.X, b.rect.Y, b.label, color)
	}

	if !v.Finished {
		m.screen.DrawText(2, area.Bottom()-1, fmt.Sprintf(" %d tiles left ", len(v.Tiles)))
	} else {
		m.screen.DrawText(2, area.Bottom()-1, " finished ")
	}

	return RenderScreen(m.screen)
}

// renderPanel draws the lines beneath the board: the result entry form once
// the board is finished, the status line otherwise.
func (m *Model) renderPanel() string {
	v := m.session.View()

	if !v.Finished {
		line := m.status
		if line == "" {
			if m.session.Selected() != game.NoSelection {
				line = "pick a second tile to subtract, or the same tile to deselect"
			} else {
				line = "pick a tile to start a combination"
			}
		}
		return statusStyle.Render(line) + "\n\n"
	}

	score := resultStyle.Render(fmt.Sprintf("Final score: %d", v.Score))
	if m.submitted {
		return score + "\n" + statusStyle.Render("score submitted, see the Ranking tab") + "\n"
	}

	hint := "press enter to submit to the ranking"
	if m.status != "" {
		hint = m.status
	}
	return score + "\n" + m.nameInput.View() + "\n" + statusStyle.Render(hint)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := renderHeader(m.width, m.session.Page())

	if m.session.Page() == game.PageRanking {
		body := m.rankingTable.View()
		if m.store == nil {
			body = statusStyle.Render("ranking is unavailable: no database")
		}
		return header + "\n" + body + "\n" + m.help.View(m.keys)
	}

	return header + "\n" +
		m.renderBoard() + "\n" +
		m.renderPanel() + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *ranking.Store, width, height int) error {
	model := NewModel(session, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // tiles are clickable
	)

	_, err := p.Run()
	return err
}
