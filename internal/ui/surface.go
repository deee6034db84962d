package ui

import (
	"github.com/charmbracelet/lipgloss/v2"
)

// Measurable reports the rows it occupies when laid out at a given width.
type Measurable interface {
	Measure(width int) int
}

type Renderable interface {
	Measurable
	View(width int) string
}

// Surface is the fixed-height list that entries are attached to. Children
// are separated by the top padding of its gap style.
type Surface struct {
	Title          string
	Width          int
	FallbackHeight int

	titleStyle lipgloss.Style
	gap        lipgloss.Style
	children   []Renderable
	heights    []int
}

func NewSurface(title string, width, padding, fallbackHeight int, titleStyle lipgloss.Style) *Surface {
	return &Surface{
		Title:          title,
		Width:          width,
		FallbackHeight: fallbackHeight,
		titleStyle:     titleStyle,
		gap:            lipgloss.NewStyle().PaddingTop(padding),
	}
}

// Gap is the margin added above every child.
func (s *Surface) Gap() int {
	return s.gap.GetPaddingTop()
}

// Probe lays r out off-surface and returns its height; r is never
// attached. A nil r stands for an average entry of FallbackHeight rows.
func (s *Surface) Probe(r Renderable) int {
	if r == nil {
		return s.FallbackHeight
	}
	return r.Measure(s.Width)
}

// OccupiedHeight is the measured height of everything currently rendered.
func (s *Surface) OccupiedHeight() int {
	view := s.View()
	if view == "" {
		return 0
	}
	return lipgloss.Height(view)
}

// Fits reports whether r, plus its gap, still fits strictly inside the
// space the viewport leaves below the current content.
func (s *Surface) Fits(r Renderable, viewport int) bool {
	required := s.Probe(r) + s.Gap()
	spaceLeft := viewport - s.OccupiedHeight()
	return required < spaceLeft
}

func (s *Surface) Append(r Renderable) {
	s.children = append(s.children, r)
	s.heights = append(s.heights, r.Measure(s.Width))
}

// Fill attaches items in order until the first one that does not fit and
// returns how many were attached. Later items are never considered once
// one has been rejected, even if they are smaller.
func (s *Surface) Fill(items []Renderable, viewport int) int {
	n := 0
	for _, item := range items {
		if !s.Fits(item, viewport) {
			break
		}
		s.Append(item)
		n++
	}
	return n
}

func (s *Surface) Clear() {
	s.children = nil
	s.heights = nil
}

func (s *Surface) Len() int {
	return len(s.children)
}

func (s *Surface) Children() []Renderable {
	return s.children
}

// ItemAt maps a row of the rendered surface to a child index, or -1 for
// the title, gaps and rows below the last child.
func (s *Surface) ItemAt(y int) int {
	top := s.titleHeight()
	gap := s.Gap()
	for i, h := range s.heights {
		top += gap
		if y >= top && y < top+h {
			return i
		}
		top += h
	}
	return -1
}

func (s *Surface) View() string {
	var parts []string
	if s.Title != "" {
		parts = append(parts, s.titleStyle.Render(s.Title))
	}
	for _, child := range s.children {
		parts = append(parts, s.gap.Render(child.View(s.Width)))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Surface) titleHeight() int {
	if s.Title == "" {
		return 0
	}
	return lipgloss.Height(s.titleStyle.Render(s.Title))
}
