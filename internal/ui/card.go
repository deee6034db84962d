package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/cwarden/agenda/internal/schedule"
)

const (
	dateWidth    = 5
	minInfoWidth = 10
	detailsSep   = " · "
)

// Card is the rendered form of one entry: a date block beside the title,
// description and details, framed by a border in the entry's kind color.
type Card struct {
	Entry    schedule.Entry
	Selected bool

	styles     *Styles
	loc        *time.Location
	timeFormat string

	// body cache, keyed by outer width
	width int
	body  string
}

func NewCard(entry schedule.Entry, styles *Styles, loc *time.Location, timeFormat string) *Card {
	if loc == nil {
		loc = time.Local
	}
	if timeFormat == "" {
		timeFormat = "15:04"
	}
	return &Card{
		Entry:      entry,
		styles:     styles,
		loc:        loc,
		timeFormat: timeFormat,
		width:      -1,
	}
}

// Measure renders the card off-surface at width and returns its height.
func (c *Card) Measure(width int) int {
	return lipgloss.Height(c.View(width))
}

func (c *Card) View(width int) string {
	border := c.styles.KindColor(string(c.Entry.Kind))
	if c.Selected {
		border = c.styles.SelectedColor()
	}
	return c.styles.Card.BorderForeground(border).Render(c.Body(width))
}

// Body is the card content without its frame, laid out for a card of the
// given outer width.
func (c *Card) Body(width int) string {
	if width == c.width {
		return c.body
	}
	c.width = width
	c.body = c.renderBody(width - c.styles.Card.GetHorizontalFrameSize())
	return c.body
}

// BodyLines returns a fresh copy of the rendered body lines.
func (c *Card) BodyLines(width int) []string {
	return append([]string(nil), strings.Split(c.Body(width), "\n")...)
}

func (c *Card) renderBody(width int) string {
	var weekday, day, month, clock string
	if start := c.Entry.Start; !start.IsZero() {
		local := start.In(c.loc)
		weekday = local.Format("Mon")
		day = local.Format("2")
		month = local.Format("Jan")
		clock = local.Format(c.timeFormat)
	}

	date := c.styles.Date.Render(lipgloss.JoinVertical(lipgloss.Center,
		weekday,
		c.styles.DateDay.Render(day),
		month,
	))

	infoWidth := width - dateWidth - 1
	if infoWidth < minInfoWidth {
		infoWidth = minInfoWidth
	}

	info := []string{c.styles.EntryTitle.Render(fit(c.Entry.Title, infoWidth))}
	if c.Entry.Description != "" {
		info = append(info, c.styles.Description.Render(fit(c.Entry.Description, infoWidth)))
	}

	var details []string
	for _, part := range []string{clock, schedule.EstimateDuration(c.Entry.Start, c.Entry.End), c.Entry.Location} {
		if part != "" {
			details = append(details, part)
		}
	}
	if len(details) > 0 {
		info = append(info, c.styles.Details.Render(fit(strings.Join(details, detailsSep), infoWidth)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, date, " ", lipgloss.JoinVertical(lipgloss.Left, info...))
}

// fit word-wraps s to width, hard-breaking words that are still too long.
func fit(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}
