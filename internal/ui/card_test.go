package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cwarden/agenda/internal/config"
	"github.com/cwarden/agenda/internal/schedule"
)

func testStyles() *Styles {
	styles := NewStyles(config.DefaultConfig())
	return &styles
}

func workshopEntry() schedule.Entry {
	start := time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC)
	return schedule.Entry{
		ID:          3,
		Kind:        "workshop",
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Title:       "Intro to Go",
		Description: "Bring a laptop",
		Location:    "Cluster 1",
	}
}

func TestCardRendersEntryFields(t *testing.T) {
	card := NewCard(workshopEntry(), testStyles(), time.UTC, "15:04")
	text := ansi.Strip(card.View(60))

	for _, want := range []string{"Tue", "4", "Mar", "Intro to Go", "Bring a laptop", "14:30", "About 2 hours", "Cluster 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("card is missing %q:\n%s", want, text)
		}
	}

	if h := card.Measure(60); h != lipgloss.Height(card.View(60)) {
		t.Errorf("Measure = %d, rendered height %d", h, lipgloss.Height(card.View(60)))
	}
	if h := card.Measure(60); h != 3 {
		t.Errorf("short entry should be as tall as its date block, got %d", h)
	}
}

func TestCardUsesConfiguredZone(t *testing.T) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Skipf("zoneinfo unavailable: %v", err)
	}
	card := NewCard(workshopEntry(), testStyles(), amsterdam, "15:04")
	if text := ansi.Strip(card.View(60)); !strings.Contains(text, "15:30") {
		t.Errorf("start time should be shown in the configured zone:\n%s", text)
	}
}

func TestCardHeightGrowsWhenNarrow(t *testing.T) {
	entry := workshopEntry()
	entry.Description = strings.Repeat("a long description that needs wrapping ", 4)
	card := NewCard(entry, testStyles(), time.UTC, "15:04")

	wide := card.Measure(200)
	narrow := card.Measure(30)
	if narrow <= wide {
		t.Errorf("narrow card (%d rows) should be taller than wide card (%d rows)", narrow, wide)
	}

	for _, line := range strings.Split(card.View(30), "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line wider than the card: %d > 30: %q", w, ansi.Strip(line))
		}
	}
}

func TestCardInvalidTimestamps(t *testing.T) {
	entry := schedule.FromEvent(schedule.Event{ID: 1, Name: "Mystery", BeginAt: "soon", EndAt: "later", Location: "Hall"})
	card := NewCard(entry, testStyles(), time.UTC, "15:04")
	text := ansi.Strip(card.View(60))

	if !strings.Contains(text, "Mystery") || !strings.Contains(text, "Hall") {
		t.Errorf("card should still show title and location:\n%s", text)
	}
	if strings.Contains(text, "About") {
		t.Errorf("invalid timestamps must not produce a duration:\n%s", text)
	}
}

func TestCardSelectionKeepsHeight(t *testing.T) {
	card := NewCard(workshopEntry(), testStyles(), time.UTC, "15:04")
	before := card.Measure(50)
	card.Selected = true
	if after := card.Measure(50); after != before {
		t.Errorf("selection changed the height from %d to %d", before, after)
	}
}

func TestCardBodyLinesAreACopy(t *testing.T) {
	card := NewCard(workshopEntry(), testStyles(), time.UTC, "15:04")
	lines := card.BodyLines(60)
	lines[0] = "mutated"
	if strings.Split(card.Body(60), "\n")[0] == "mutated" {
		t.Error("BodyLines must not share storage with the card")
	}
}
