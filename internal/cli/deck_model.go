package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/internal/config"
	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/deck"
)

// Deck styles
var (
	navActiveStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorCyan)
	navPendingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	barFilledStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	hintKeyStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	paneTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	peekStyle       = lipgloss.NewStyle().Foreground(colorDim).PaddingRight(2)
	mainStyle       = lipgloss.NewStyle().PaddingRight(2)
)

// Screen layout. The body sits between a header of navbar, progress bar and
// a blank line, and a footer of a blank line and key hints.
const (
	headerRows    = 3
	footerRows    = 2
	minBodyRows   = 3
	minPeekWidth  = 80 // narrower terminals show no peek columns
	defaultWidth  = 80
	defaultHeight = 24

	// pixelsPerCell converts the pixel swipe threshold to terminal columns.
	pixelsPerCell = 8
)

// paneTarget is the event target of one rendered column.
type paneTarget struct {
	section deck.SectionID
}

func resolvePane(t deck.Target) (deck.SectionID, bool) {
	p, ok := t.(paneTarget)
	if !ok {
		return "", false
	}
	return p.section, true
}

// committedMsg is delivered after the controller commits a transition.
type committedMsg struct {
	from, to deck.SectionID
}

// maintenanceMsg is delivered by the view's periodic maintenance task.
type maintenanceMsg struct{}

// =============================================================================
// DeckModel - Terminal deck presentation
// =============================================================================

// DeckOptions configures NewDeckModel.
type DeckOptions struct {
	Profile deck.Profile
	Clock   clock.Clock
	Logger  *log.Logger
	Context context.Context
}

// DeckModel is the bubbletea model that presents the deck. Navigation goes
// through the mounted view; the model only renders committed state.
type DeckModel struct {
	view    *deck.View
	doc     *deck.Document
	content map[deck.SectionID]config.Section

	events chan tea.Msg
	done   chan struct{}
	stop   func()

	width, height int
	scroll        map[deck.SectionID]int
	dragging      bool
	quitting      bool
}

// NewDeckModel mounts a view for the configured sections.
func NewDeckModel(cfg *config.Config, opts DeckOptions) (DeckModel, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return DeckModel{}, err
	}

	timings := cfg.Timings()
	timings.SwipeThreshold = max(1, timings.SwipeThreshold/pixelsPerCell)

	m := DeckModel{
		doc:     deck.NewDocument(),
		content: make(map[deck.SectionID]config.Section, catalog.Len()),
		events:  make(chan tea.Msg, 16),
		done:    make(chan struct{}),
		width:   defaultWidth,
		height:  defaultHeight,
		scroll:  make(map[deck.SectionID]int),
	}
	for _, s := range cfg.Sections {
		m.content[deck.SectionID(s.ID)] = s
	}

	profile := opts.Profile
	m.view = deck.Mount(catalog, deck.MountOptions{
		Profile:     &profile,
		Timings:     timings,
		Clock:       opts.Clock,
		Source:      m.doc,
		Resolver:    deck.ResolverFunc(resolvePane),
		Maintenance: func() { m.notify(maintenanceMsg{}) },
		Logger:      opts.Logger,
		Context:     opts.Context,
	})

	unsubscribe := m.view.Controller.Subscribe(func(from, to deck.SectionID) {
		m.notify(committedMsg{from: from, to: to})
	})
	m.stop = sync.OnceFunc(func() {
		unsubscribe()
		m.view.Unmount()
		close(m.done)
	})
	return m, nil
}

// notify hands msg to the program without blocking the timer goroutine.
// The model reads state from the controller, so a dropped wake-up is harmless
// as long as a later one arrives.
func (m DeckModel) notify(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.done:
	default:
	}
}

// waitForEvent returns a command that blocks until the next commit or
// maintenance tick.
func (m DeckModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.done:
			return nil
		}
	}
}

// Close unmounts the view. It is safe to call more than once.
func (m DeckModel) Close() { m.stop() }

func (m DeckModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			m.stop()
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-1)
			return m, nil
		case "down", "j":
			m.scrollBy(1)
			return m, nil
		}
		if n, err := strconv.Atoi(key); err == nil {
			if n >= 1 && n <= m.catalog().Len() {
				m.view.Controller.GoTo(m.catalog().At(n - 1))
			}
			return m, nil
		}
		m.view.HandleKey(key)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case committedMsg:
		m.scroll[msg.to] = 0
		return m, m.waitForEvent()

	case maintenanceMsg:
		active := m.view.Controller.Current()
		for id := range m.scroll {
			if id != active {
				delete(m.scroll, id)
			}
		}
		return m, m.waitForEvent()
	}
	return m, nil
}

func (m *DeckModel) handleMouse(msg tea.MouseMsg) {
	target := m.paneAt(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		ev := m.doc.Dispatch(&deck.Event{Kind: deck.EventWheel, Target: target, X: msg.X, Y: msg.Y, Delta: delta})
		if !ev.DefaultPrevented() {
			m.scrollBy(delta)
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.touch(deck.EventTouchStart, target, msg)
		m.dragging = true

	case m.dragging && msg.Action == tea.MouseActionMotion:
		m.touch(deck.EventTouchMove, target, msg)

	case m.dragging && msg.Action == tea.MouseActionRelease:
		m.touch(deck.EventTouchEnd, target, msg)
		m.dragging = false
	}
}

func (m *DeckModel) touch(kind deck.EventKind, target deck.Target, msg tea.MouseMsg) {
	ev := m.doc.Dispatch(&deck.Event{Kind: kind, Target: target, X: msg.X, Y: msg.Y})
	m.view.HandleGesture(ev)
}

func (m *DeckModel) scrollBy(delta int) {
	id := m.view.Controller.Current()
	limit := max(0, len(m.section(id).Lines)-1)
	m.scroll[id] = min(limit, max(0, m.scroll[id]+delta))
}

// =============================================================================
// Layout
// =============================================================================

func (m DeckModel) catalog() *deck.Catalog { return m.view.Controller.Catalog() }

func (m DeckModel) section(id deck.SectionID) config.Section {
	if s, ok := m.content[id]; ok {
		return s
	}
	return config.Section{ID: string(id), Title: string(id)}
}

func (m DeckModel) bodyRows() int {
	return max(minBodyRows, m.height-headerRows-footerRows)
}

func (m DeckModel) peekWidth() int {
	if m.width < minPeekWidth {
		return 0
	}
	return m.width / 5
}

// neighbours returns the sections shown in the peek columns, or "".
func (m DeckModel) neighbours() (prev, next deck.SectionID) {
	idx := m.view.Controller.CurrentIndex()
	if idx > 0 {
		prev = m.catalog().At(idx - 1)
	}
	if idx+1 < m.catalog().Len() {
		next = m.catalog().At(idx + 1)
	}
	return prev, next
}

// paneAt maps a screen cell to the column under it. Cells outside the body,
// and empty peek columns, belong to no section.
func (m DeckModel) paneAt(x, y int) deck.Target {
	if y < headerRows || y >= headerRows+m.bodyRows() {
		return nil
	}
	peek := m.peekWidth()
	prev, next := m.neighbours()
	switch {
	case x < peek:
		if prev == "" {
			return nil
		}
		return paneTarget{section: prev}
	case x >= m.width-peek:
		if next == "" {
			return nil
		}
		return paneTarget{section: next}
	}
	return paneTarget{section: m.view.Controller.Current()}
}

// =============================================================================
// Rendering
// =============================================================================

func (m DeckModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderNavbar())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m DeckModel) renderNavbar() string {
	ctl := m.view.Controller
	active := ctl.Current()

	items := make([]string, 0, ctl.Len()+1)
	for i, id := range m.catalog().IDs() {
		label := fmt.Sprintf("%d %s", i+1, id)
		if id == active {
			items = append(items, navActiveStyle.Render(label))
		} else {
			items = append(items, StyleDim.Render(label))
		}
	}
	if ctl.Pending() {
		items = append(items, navPendingStyle.Render("•"))
	}
	return strings.Join(items, "  ")
}

func (m DeckModel) renderProgress() string {
	ctl := m.view.Controller
	counter := fmt.Sprintf(" %d/%d", ctl.CurrentIndex()+1, ctl.Len())

	width := max(10, m.width-len(counter))
	filled := int(math.Round(ctl.Progress() * float64(width)))
	return barFilledStyle.Render(strings.Repeat("━", filled)) +
		StyleDim.Render(strings.Repeat("─", width-filled)) +
		StyleDim.Render(counter)
}

func (m DeckModel) renderBody() string {
	rows := m.bodyRows()
	peek := m.peekWidth()
	prev, next := m.neighbours()
	active := m.view.Controller.Current()

	main := m.renderPane(active, m.scroll[active], true)
	if peek == 0 {
		return mainStyle.Width(m.width).Height(rows).MaxHeight(rows).Render(main)
	}

	column := func(id deck.SectionID) string {
		s := ""
		if id != "" {
			s = m.renderPane(id, 0, false)
		}
		return peekStyle.Width(peek).Height(rows).MaxHeight(rows).Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column(prev),
		mainStyle.Width(m.width-2*peek).Height(rows).MaxHeight(rows).Render(main),
		column(next),
	)
}

func (m DeckModel) renderPane(id deck.SectionID, offset int, active bool) string {
	s := m.section(id)
	lines := s.Lines
	if offset < len(lines) {
		lines = lines[offset:]
	}

	title := s.Title
	if active {
		title = paneTitleStyle.Render(title)
	}
	return title + "\n\n" + strings.Join(lines, "\n")
}

func (m DeckModel) renderFooter() string {
	ctl := m.view.Controller
	hint := func(key, label string) string {
		return hintKeyStyle.Render(key) + " " + StyleDim.Render(label)
	}

	var hints []string
	if !ctl.IsFirst() {
		hints = append(hints, hint("←", "prev"))
	}
	if !ctl.IsLast() {
		hints = append(hints, hint("→", "next"))
	}
	if !ctl.IsFirst() {
		hints = append(hints, hint("g", "home"))
	}
	hints = append(hints, hint("1-9", "jump"), hint("q", "quit"))
	return strings.Join(hints, StyleDim.Render(" · "))
}

// =============================================================================
// Device
// =============================================================================

// terminalEnvironment describes the terminal to device detection. Terminals
// report no touch points; Termux is the one signal that the host is a phone.
func terminalEnvironment() *deck.Environment {
	env := &deck.Environment{Available: true, UserAgent: "terminal"}
	if v := os.Getenv("TERMUX_VERSION"); v != "" {
		env.UserAgent = "Android Termux/" + v
	}
	return env
}
