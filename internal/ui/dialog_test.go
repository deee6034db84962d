package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/cwarden/agenda/internal/schedule"
)

func TestDialogOpenCopiesRenderedBody(t *testing.T) {
	styles := testStyles()
	card := NewCard(workshopEntry(), styles, time.UTC, "15:04")
	d := NewDialog(styles)

	overlay := d.Open(card, 60)
	if overlay.Kind != "workshop" || overlay.Key != "workshop/3" {
		t.Errorf("overlay not tagged with the entry: %+v", overlay)
	}
	if overlay.Content() != card.Body(60) {
		t.Errorf("overlay content differs from the card body:\n%s\n---\n%s", overlay.Content(), card.Body(60))
	}

	view := ansi.Strip(d.View())
	if !strings.Contains(view, closeGlyph) || !strings.Contains(view, "Intro to Go") {
		t.Errorf("overlay view missing close button or content:\n%s", view)
	}
}

func TestDialogSingleActiveOverlay(t *testing.T) {
	styles := testStyles()
	d := NewDialog(styles)

	first := NewCard(workshopEntry(), styles, time.UTC, "15:04")
	second := NewCard(schedule.Entry{ID: 8, Kind: schedule.KindExam, Title: "Exam Rank 04"}, styles, time.UTC, "15:04")

	d.Open(first, 60)
	d.Open(second, 60)

	if d.Active() == nil || d.Active().Key != "exam/8" {
		t.Fatalf("the most recent overlay should be the only active one, got %+v", d.Active())
	}

	d.Close()
	if d.IsOpen() {
		t.Error("closing should leave no overlay behind")
	}
}

func TestDialogClicks(t *testing.T) {
	styles := testStyles()
	card := NewCard(workshopEntry(), styles, time.UTC, "15:04")
	d := NewDialog(styles)

	const w, h = 100, 30
	if got := d.Click(1, 1, w, h); got != ClickIgnored {
		t.Errorf("click without overlay = %v, want ClickIgnored", got)
	}

	d.Open(card, 60)
	l := d.layout(w, h)

	if got := d.Click(l.content.x, l.content.y, w, h); got != ClickInside || !d.IsOpen() {
		t.Fatalf("click on content should be swallowed, got %v open=%v", got, d.IsOpen())
	}
	last := l.content
	if got := d.Click(last.x+last.w-1, last.y+last.h-1, w, h); got != ClickInside || !d.IsOpen() {
		t.Fatalf("click on the last content cell should be swallowed, got %v", got)
	}

	if got := d.Click(l.close.x, l.close.y, w, h); got != ClickClosed || d.IsOpen() {
		t.Fatalf("close button should close the overlay, got %v", got)
	}

	d.Open(card, 60)
	if got := d.Click(0, 0, w, h); got != ClickClosed || d.IsOpen() {
		t.Fatalf("backdrop click should close the overlay, got %v", got)
	}
}

func TestDialogLayoutMatchesView(t *testing.T) {
	styles := testStyles()
	card := NewCard(workshopEntry(), styles, time.UTC, "15:04")
	d := NewDialog(styles)
	d.Open(card, 60)

	l := d.layout(100, 30)
	view := d.View()
	if lipgloss.Width(view) != l.box.w || lipgloss.Height(view) != l.box.h {
		t.Errorf("layout %dx%d does not match rendered %dx%d",
			l.box.w, l.box.h, lipgloss.Width(view), lipgloss.Height(view))
	}

	lines := strings.Split(ansi.Strip(view), "\n")
	closeRow := []rune(lines[l.close.y-l.box.y])
	if string(closeRow[l.close.x-l.box.x]) != closeGlyph {
		t.Errorf("close glyph not at the layout position: %q", string(closeRow))
	}

	if layer := d.Layer(100, 30); layer == nil {
		t.Error("an open dialog should produce a layer")
	}
	d.Close()
	if layer := d.Layer(100, 30); layer != nil {
		t.Error("a closed dialog should not produce a layer")
	}
}
