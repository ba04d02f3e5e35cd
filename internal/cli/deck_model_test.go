package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/folio/internal/config"
	"github.com/matzehuels/folio/pkg/clock"
	"github.com/matzehuels/folio/pkg/deck"
)

func newTestModel(t *testing.T, touch bool) (DeckModel, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	m, err := NewDeckModel(config.Default(), DeckOptions{
		Profile: deck.Profile{TouchPrimary: touch},
		Clock:   clk,
	})
	if err != nil {
		t.Fatalf("NewDeckModel: %v", err)
	}
	t.Cleanup(m.Close)
	return step(t, m, tea.WindowSizeMsg{Width: 160, Height: 30}), clk
}

func step(t *testing.T, m DeckModel, msg tea.Msg) DeckModel {
	t.Helper()
	next, _ := m.Update(msg)
	dm, ok := next.(DeckModel)
	if !ok {
		t.Fatalf("Update returned %T, want DeckModel", next)
	}
	return dm
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// navigate requests key and lets the desktop settle delay pass.
func navigate(t *testing.T, m DeckModel, clk *clock.Fake, k string) DeckModel {
	t.Helper()
	m = step(t, m, key(k))
	clk.Advance(deck.DefaultDesktopDelay)
	return step(t, m, m.waitForEvent()())
}

func TestDeckModelKeyNavigation(t *testing.T) {
	m, clk := newTestModel(t, false)
	ctl := m.view.Controller

	m = step(t, m, key("right"))
	if !ctl.Pending() || ctl.Current() != deck.SectionHero {
		t.Fatalf("after right: pending=%v current=%s", ctl.Pending(), ctl.Current())
	}

	// Dropped while the first transition settles.
	m = step(t, m, key("right"))
	clk.Advance(deck.DefaultDesktopDelay)

	msg, ok := m.waitForEvent()().(committedMsg)
	if !ok {
		t.Fatal("expected a committedMsg after the delay")
	}
	if msg.from != deck.SectionHero || msg.to != deck.SectionProfile {
		t.Errorf("commit = %s -> %s, want hero -> profile", msg.from, msg.to)
	}
	if ctl.Current() != deck.SectionProfile {
		t.Errorf("Current = %s, want profile", ctl.Current())
	}
}

func TestDeckModelNumberKeys(t *testing.T) {
	m, clk := newTestModel(t, false)
	ctl := m.view.Controller

	m = navigate(t, m, clk, "3")
	if ctl.Current() != deck.SectionMatrix {
		t.Errorf("after 3: Current = %s, want matrix", ctl.Current())
	}

	m = step(t, m, key("9"))
	if ctl.Pending() {
		t.Error("9 is past the last section and should not request anything")
	}

	navigate(t, m, clk, "g")
	if ctl.Current() != deck.SectionHero {
		t.Errorf("after g: Current = %s, want hero", ctl.Current())
	}
}

func TestDeckModelWheel(t *testing.T) {
	m, clk := newTestModel(t, false)
	m = navigate(t, m, clk, "right")

	wheel := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: headerRows + 2, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	}

	// The left peek column shows hero, which is not active.
	m = step(t, m, wheel(5))
	if got := m.scroll[deck.SectionProfile]; got != 0 {
		t.Errorf("wheel over peek scrolled the active pane to %d", got)
	}

	m = step(t, m, wheel(50))
	if got := m.scroll[deck.SectionProfile]; got != 1 {
		t.Errorf("wheel over active pane: scroll = %d, want 1", got)
	}

	// Clamped at the last line.
	m = step(t, m, wheel(50))
	m = step(t, m, wheel(50))
	if got := m.scroll[deck.SectionProfile]; got != 1 {
		t.Errorf("scroll = %d, want clamp at 1", got)
	}
}

func TestDeckModelPaneAt(t *testing.T) {
	m, clk := newTestModel(t, false)
	m = navigate(t, m, clk, "right")

	tests := []struct {
		name string
		x, y int
		want deck.Target
	}{
		{name: "header", x: 50, y: 0, want: nil},
		{name: "left peek", x: 0, y: headerRows, want: paneTarget{section: deck.SectionHero}},
		{name: "main", x: 50, y: headerRows, want: paneTarget{section: deck.SectionProfile}},
		{name: "right peek", x: 159, y: headerRows, want: paneTarget{section: deck.SectionMatrix}},
		{name: "footer", x: 50, y: 29, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.paneAt(tt.x, tt.y); got != tt.want {
				t.Errorf("paneAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDeckModelDragSwipe(t *testing.T) {
	m, clk := newTestModel(t, true)
	ctl := m.view.Controller
	y := headerRows + 2

	m = step(t, m, tea.MouseMsg{X: 60, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = step(t, m, tea.MouseMsg{X: 50, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m = step(t, m, tea.MouseMsg{X: 40, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	if m.dragging {
		t.Error("drag should end on release")
	}
	if !ctl.Pending() {
		t.Fatal("a leftward drag should request the next section")
	}
	clk.Advance(deck.DefaultTouchDelay)
	if ctl.Current() != deck.SectionProfile {
		t.Errorf("Current = %s, want profile", ctl.Current())
	}
}

func TestDeckModelShortDragIgnored(t *testing.T) {
	m, _ := newTestModel(t, true)
	y := headerRows + 2

	m = step(t, m, tea.MouseMsg{X: 60, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	step(t, m, tea.MouseMsg{X: 58, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	if m.view.Controller.Pending() {
		t.Error("a two-cell drag is below the swipe threshold")
	}
}

func TestDeckModelFooter(t *testing.T) {
	m, clk := newTestModel(t, false)

	out := m.View()
	if strings.Contains(out, "prev") || !strings.Contains(out, "next") {
		t.Errorf("first section footer should offer next only:\n%s", out)
	}

	m = navigate(t, m, clk, "7")
	out = m.View()
	if strings.Contains(out, "next") || !strings.Contains(out, "prev") {
		t.Errorf("last section footer should hide next:\n%s", out)
	}
	if !strings.Contains(out, "7/7") {
		t.Errorf("progress counter missing from:\n%s", out)
	}
}

func TestDeckModelViewShowsSections(t *testing.T) {
	m, clk := newTestModel(t, false)
	m = navigate(t, m, clk, "right")

	out := m.View()
	for _, want := range []string{"Profile", "Hello, I build things", "Skills matrix"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDeckModelQuitUnmounts(t *testing.T) {
	m, clk := newTestModel(t, false)
	ctl := m.view.Controller

	m = step(t, m, key("right"))
	next, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if m.view.Mounted() {
		t.Error("view should be unmounted after quit")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quit")
	}

	clk.Advance(time.Second)
	if ctl.Current() != deck.SectionHero {
		t.Errorf("pending transition committed after quit: %s", ctl.Current())
	}
	if msg := m.waitForEvent()(); msg != nil {
		t.Errorf("waitForEvent after quit = %v, want nil", msg)
	}
}

func TestDeckModelMaintenance(t *testing.T) {
	m, clk := newTestModel(t, true)
	m.scroll[deck.SectionContact] = 3

	clk.Advance(deck.DefaultMaintenance)
	msg := m.waitForEvent()()
	if _, ok := msg.(maintenanceMsg); !ok {
		t.Fatalf("got %T, want maintenanceMsg", msg)
	}
	m = step(t, m, msg)
	if _, ok := m.scroll[deck.SectionContact]; ok {
		t.Error("maintenance should drop scroll state of inactive sections")
	}
}

func TestTerminalEnvironment(t *testing.T) {
	t.Setenv("TERMUX_VERSION", "")
	if deck.Detect(terminalEnvironment()).TouchPrimary {
		t.Error("plain terminal should be desktop")
	}

	t.Setenv("TERMUX_VERSION", "0.118.0")
	if !deck.Detect(terminalEnvironment()).TouchPrimary {
		t.Error("Termux should be touch-primary")
	}
}
