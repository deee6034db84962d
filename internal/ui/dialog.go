package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	appLog "github.com/cwarden/agenda/internal/log"
	"github.com/cwarden/agenda/internal/schedule"
)

const closeGlyph = "×"

// Overlay is an open detail view. Its content is a copy of the card's
// rendered body, so the detail view always looks like the list entry.
type Overlay struct {
	Kind  schedule.Kind
	Key   string
	lines []string
}

func (o *Overlay) Content() string {
	return strings.Join(o.lines, "\n")
}

type ClickResult int

const (
	// ClickIgnored: no overlay was open.
	ClickIgnored ClickResult = iota
	// ClickInside: the click landed on the content and was swallowed.
	ClickInside
	// ClickClosed: the overlay was closed and removed.
	ClickClosed
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type dialogLayout struct {
	box     rect
	content rect
	close   rect
}

// Dialog is the modal detail view. At most one overlay is open at a time.
type Dialog struct {
	styles *Styles
	active *Overlay
}

func NewDialog(styles *Styles) *Dialog {
	return &Dialog{styles: styles}
}

// Open shows card in a new overlay, replacing any overlay already open.
func (d *Dialog) Open(card *Card, width int) *Overlay {
	if d.active != nil {
		d.Close()
	}
	d.active = &Overlay{
		Kind:  card.Entry.Kind,
		Key:   card.Entry.Key(),
		lines: card.BodyLines(width),
	}
	appLog.Debug("detail opened", "entry", d.active.Key)
	return d.active
}

func (d *Dialog) Close() {
	if d.active == nil {
		return
	}
	appLog.Debug("detail closed", "entry", d.active.Key)
	d.active = nil
}

func (d *Dialog) Active() *Overlay {
	return d.active
}

func (d *Dialog) IsOpen() bool {
	return d.active != nil
}

// Click handles a pointer press at x, y on a screen of the given size.
// Clicks on the content stop there; anywhere else, including the close
// button, closes the overlay.
func (d *Dialog) Click(x, y, screenW, screenH int) ClickResult {
	if d.active == nil {
		return ClickIgnored
	}
	l := d.layout(screenW, screenH)
	if l.content.contains(x, y) {
		return ClickInside
	}
	if l.close.contains(x, y) {
		appLog.Debug("detail close button pressed", "entry", d.active.Key)
	}
	d.Close()
	return ClickClosed
}

func (d *Dialog) contentSize() (int, int) {
	w := 1
	for _, line := range d.active.lines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w, len(d.active.lines)
}

// layout centers the box on the screen: a border, one column of
// horizontal padding, and a close row above the content.
func (d *Dialog) layout(screenW, screenH int) dialogLayout {
	w, h := d.contentSize()
	boxW := w + d.styles.Dialog.GetHorizontalFrameSize()
	boxH := h + 1 + d.styles.Dialog.GetVerticalFrameSize()

	x := (screenW - boxW) / 2
	if x < 0 {
		x = 0
	}
	y := (screenH - boxH) / 2
	if y < 0 {
		y = 0
	}

	left := x + d.styles.Dialog.GetBorderLeftSize() + d.styles.Dialog.GetPaddingLeft()
	top := y + d.styles.Dialog.GetBorderTopSize() + d.styles.Dialog.GetPaddingTop()

	return dialogLayout{
		box:     rect{x, y, boxW, boxH},
		close:   rect{left + w - 1, top, 1, 1},
		content: rect{left, top + 1, w, h},
	}
}

func (d *Dialog) View() string {
	if d.active == nil {
		return ""
	}
	w, _ := d.contentSize()
	closeRow := strings.Repeat(" ", w-1) + d.styles.CloseButton.Render(closeGlyph)
	inner := lipgloss.JoinVertical(lipgloss.Left, closeRow, d.active.Content())
	return d.styles.Dialog.
		BorderForeground(d.styles.KindColor(string(d.active.Kind))).
		Render(inner)
}

// Layer positions the overlay above the list. It returns nil when no
// overlay is open.
func (d *Dialog) Layer(screenW, screenH int) *lipgloss.Layer {
	if d.active == nil {
		return nil
	}
	l := d.layout(screenW, screenH)
	return lipgloss.NewLayer(d.View()).X(l.box.x).Y(l.box.y).Z(1)
}
