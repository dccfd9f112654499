package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
)

// Controller is the part of the catalog controller the browser drives.
type Controller interface {
	StateSource
	Retry()
}

// Screen tracks which view is in front.
type Screen int

const (
	// ScreenList shows the catalog as a scrollable list.
	ScreenList Screen = iota
	// ScreenDetail shows one record.
	ScreenDetail
)

// Rows taken by the header and footer around the list and detail bodies.
const chromeHeight = 4

// Model is the root BubbleTea model of the catalog browser.
type Model struct {
	controller Controller
	bridge     *StateBridge
	keys       KeyMap

	spinner  spinner.Model
	viewport viewport.Model

	state   handlers.State
	catalog *entities.Catalog

	screen   Screen
	cursor   int
	offset   int
	selected int // record id shown on the detail screen

	width  int
	height int
}

// NewModel creates a browser over the given controller. Transitions reach the
// model through bridge, which must be registered as a controller observer.
func NewModel(controller Controller, bridge *StateBridge) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleLoading

	m := Model{
		controller: controller,
		bridge:     bridge,
		keys:       DefaultKeyMap(),
		spinner:    s,
		viewport:   viewport.New(80, 20),
		catalog:    entities.NewCatalog(nil),
	}
	m.applyState(controller.State())
	return m
}

// Init starts the spinner and waits for the first transition.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bridge.Next(m.controller))
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.clampScroll()
		if m.screen == ScreenDetail {
			m.refreshDetail()
		}
		return m, nil

	case MsgState:
		wasLoading := m.state.IsLoading()
		m.applyState(msg.State)
		cmds := []tea.Cmd{m.bridge.Next(m.controller)}
		if !wasLoading && m.state.IsLoading() {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case msgBridgeClosed:
		return m, nil

	case spinner.TickMsg:
		if !m.state.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.screen == ScreenDetail {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.screen = ScreenList
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Retry):
		if m.state.IsLoading() {
			return m, nil
		}
		m.controller.Retry()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.clampScroll()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
			m.clampScroll()
		}

	case key.Matches(msg, m.keys.Enter):
		if m.state.IsSuccess() && m.catalog.Len() > 0 {
			m.selected = m.catalog.Records()[m.cursor].ID
			m.screen = ScreenDetail
			m.refreshDetail()
		}
	}

	return m, nil
}

// applyState swaps in a snapshot. The detail screen stays open only while the
// selected record is still part of a successful batch.
func (m *Model) applyState(s handlers.State) {
	m.state = s
	if !s.IsSuccess() {
		m.screen = ScreenList
		return
	}

	m.catalog = entities.NewCatalog(s.Records())
	if m.cursor >= m.catalog.Len() {
		m.cursor = max(m.catalog.Len()-1, 0)
	}
	m.clampScroll()

	if m.screen == ScreenDetail {
		if _, ok := m.catalog.ByID(m.selected); !ok {
			m.screen = ScreenList
			return
		}
		m.refreshDetail()
	}
}

func (m *Model) refreshDetail() {
	r, ok := m.catalog.ByID(m.selected)
	if !ok {
		return
	}
	m.viewport.SetContent(RenderDetail(r, m.catalog, m.viewport.Width))
	m.viewport.GotoTop()
}

// listHeight is the number of visible list rows. Zero means unbounded.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeHeight, 1)
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// Screen reports which view is in front.
func (m Model) Screen() Screen {
	return m.screen
}

// Cursor reports the selected list row.
func (m Model) Cursor() int {
	return m.cursor
}

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.state.IsLoading():
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading catalog...\n")
		b.WriteString("\n")
		b.WriteString(helpLine(m.keys.Quit))

	case m.state.IsError():
		b.WriteString(styleError.Render("Loading failed"))
		b.WriteString("\n\n")
		b.WriteString(helpLine(m.keys.Retry, m.keys.Quit))

	case m.screen == ScreenDetail:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpLine(m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit))

	default:
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(helpLine(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Retry, m.keys.Quit))
	}

	return b.String()
}

func (m Model) renderHeader() string {
	title := "dex"
	if m.state.IsSuccess() {
		title = fmt.Sprintf("dex · %d records", m.catalog.Len())
	}
	if m.width > 0 {
		return styleHeader.Width(m.width).Render(title)
	}
	return styleHeader.Render(title)
}

func (m Model) renderList() string {
	records := m.catalog.Records()
	if len(records) == 0 {
		return styleRowNormal.Render("No records.") + "\n"
	}

	end := len(records)
	if h := m.listHeight(); h > 0 {
		end = min(m.offset+h, len(records))
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		r := records[i]
		c := CategoryFor(r.PrimaryCategory())

		indicator := " "
		style := styleRowNormal
		if i == m.cursor {
			indicator = styleSelectionIndicator.Render(selectionIndicator)
			style = styleRowSelected
		}

		fmt.Fprintf(&b, "%s %s %s %s\n",
			indicator,
			styleRowID.Render(r.DisplayID()),
			style.Render(r.Name),
			styleBadge(c).Render(c.Icon+" "+c.Name),
		)
	}
	return b.String()
}
