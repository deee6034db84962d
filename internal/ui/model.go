package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/cwarden/agenda/internal/config"
	appLog "github.com/cwarden/agenda/internal/log"
	"github.com/cwarden/agenda/internal/schedule"
)

type State int

const (
	// StateEmpty: there is no data and nothing is displayed.
	StateEmpty State = iota
	// StatePopulated: the fitted prefix of the current data is displayed.
	StatePopulated
)

func (s State) String() string {
	if s == StatePopulated {
		return "populated"
	}
	return "empty"
}

type Model struct {
	// Core components
	config  *config.Config
	source  schedule.Source
	updates chan *schedule.Data
	surface *Surface
	dialog  *Dialog
	keys    KeyMap
	styles  Styles
	loc     *time.Location

	// Data state
	state   State
	data    *schedule.Data
	entries []schedule.Entry
	cards   []*Card

	// UI state
	width       int
	height      int
	selected    int
	helpVisible bool
	message     string
	messageID   int
}

// NewModel subscribes to the source and builds the calendar from its
// current data.
func NewModel(cfg *config.Config, source schedule.Source) *Model {
	m := &Model{
		config:  cfg,
		source:  source,
		updates: make(chan *schedule.Data, 1),
		keys:    NewKeyMap(cfg),
		styles:  NewStyles(cfg),
		loc:     cfg.Location(),
	}
	m.surface = NewSurface(cfg.Title, 0, cfg.Padding, cfg.FallbackHeight, m.styles.Title)
	m.dialog = NewDialog(&m.styles)

	// Subscribe before reading so no change between the two is missed.
	source.Subscribe(m.notify)
	m.data = source.Current()
	m.rebuild()
	return m
}

// notify runs on the source's goroutine. It hands the snapshot to the
// update loop, replacing one that has not been picked up yet.
func (m *Model) notify(data *schedule.Data) {
	for {
		select {
		case m.updates <- data:
			return
		default:
		}
		select {
		case <-m.updates:
		default:
		}
	}
}

func waitForData(updates <-chan *schedule.Data) tea.Cmd {
	return func() tea.Msg {
		return dataChangedMsg{data: <-updates}
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForData(m.updates)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.Width = msg.Width
		m.rebuild()
		return m, nil

	case dataChangedMsg:
		m.data = msg.data
		m.rebuild()
		return m, waitForData(m.updates)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case messageTimeoutMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The detail view is modal: only the close key reaches it.
	if m.dialog.IsOpen() {
		if key.Matches(msg, m.keys.Close) {
			m.dialog.Close()
		}
		return m, nil
	}

	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.Next):
		m.selectEntry(m.selected + 1)

	case key.Matches(msg, m.keys.Prev):
		m.selectEntry(m.selected - 1)

	case key.Matches(msg, m.keys.Open):
		m.activate(m.selected)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.dialog.IsOpen() {
		m.dialog.Click(msg.X, msg.Y, m.width, m.height)
		return m, nil
	}

	if m.helpVisible {
		return m, nil
	}

	if i := m.surface.ItemAt(msg.Y); i >= 0 {
		m.selectEntry(i)
		m.activate(i)
	}
	return m, nil
}

// rebuild replaces everything on the surface with the longest prefix of
// the ordered entries that fits the viewport.
func (m *Model) rebuild() {
	m.surface.Clear()
	m.cards = nil

	if m.data == nil {
		m.entries = nil
		m.state = StateEmpty
		m.selected = 0
		appLog.Debug("calendar cleared")
		return
	}

	m.entries = schedule.MergeIn(m.data, m.loc)
	cards := buildCards(m.entries, &m.styles, m.loc, m.config.TimeFormat)
	items := make([]Renderable, len(cards))
	for i, c := range cards {
		items[i] = c
	}

	viewport := m.viewportHeight()
	n := m.surface.Fill(items, viewport)
	m.cards = cards[:n]
	m.state = StatePopulated
	m.selectEntry(m.selected)

	appLog.Debug("calendar rebuilt", "entries", len(m.entries), "displayed", n, "viewport", viewport)
}

func buildCards(entries []schedule.Entry, styles *Styles, loc *time.Location, timeFormat string) []*Card {
	cards := make([]*Card, len(entries))
	for i, e := range entries {
		cards[i] = NewCard(e, styles, loc, timeFormat)
	}
	return cards
}

// viewportHeight is the screen height left after the status bar.
func (m *Model) viewportHeight() int {
	if m.height == 0 {
		return 0
	}
	return m.height - lipgloss.Height(m.renderStatusBar())
}

func (m *Model) selectEntry(i int) {
	if i >= len(m.cards) {
		i = len(m.cards) - 1
	}
	if i < 0 {
		i = 0
	}
	m.selected = i
	for j, c := range m.cards {
		c.Selected = j == i
	}
}

func (m *Model) activate(i int) {
	if i < 0 || i >= len(m.cards) {
		return
	}
	m.dialog.Open(m.cards[i], m.detailWidth())
}

// detailWidth is the card width whose body, framed by the dialog, spans
// the screen.
func (m *Model) detailWidth() int {
	return m.surface.Width - m.styles.Dialog.GetHorizontalFrameSize() + m.styles.Card.GetHorizontalFrameSize()
}

func (m *Model) reload() tea.Cmd {
	r, ok := m.source.(interface{ Reload() error })
	if !ok {
		m.rebuild()
		return m.showMessage("Redrawn")
	}
	if err := r.Reload(); err != nil {
		return m.showMessage(fmt.Sprintf("Reload failed: %v", err))
	}
	return m.showMessage("Reloaded")
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.messageID++
	id := m.messageID
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return messageTimeoutMsg{id: id}
	})
}

func (m *Model) State() State {
	return m.state
}

// Displayed returns the entries currently attached to the surface.
func (m *Model) Displayed() []schedule.Entry {
	out := make([]schedule.Entry, len(m.cards))
	for i, c := range m.cards {
		out[i] = c.Entry
	}
	return out
}

// Entries returns the full ordered sequence of the current data.
func (m *Model) Entries() []schedule.Entry {
	return m.entries
}

func (m *Model) Dialog() *Dialog {
	return m.dialog
}

// Message types
type dataChangedMsg struct {
	data *schedule.Data
}

type messageTimeoutMsg struct {
	id int
}
