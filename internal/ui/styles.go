package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/cwarden/agenda/internal/config"
)

type Styles struct {
	Title       lipgloss.Style
	Card        lipgloss.Style
	Date        lipgloss.Style
	DateDay     lipgloss.Style
	EntryTitle  lipgloss.Style
	Description lipgloss.Style
	Details     lipgloss.Style
	Dialog      lipgloss.Style
	CloseButton lipgloss.Style
	Help        lipgloss.Style
	Header      lipgloss.Style
	Normal      lipgloss.Style
	Message     lipgloss.Style

	colors   map[string]string
	selected string
}

func NewStyles(cfg *config.Config) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			PaddingLeft(1),
		Date: lipgloss.NewStyle().
			Width(dateWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("245")),
		DateDay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),
		EntryTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Details: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		CloseButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),

		colors:   cfg.Colors,
		selected: cfg.Color("selected"),
	}
}

// KindColor is the accent color of an entry kind.
func (s *Styles) KindColor(kind string) color.Color {
	if c, ok := s.colors[kind]; ok {
		return lipgloss.Color(c)
	}
	if c, ok := s.colors["default"]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.ANSIColor(240)
}

func (s *Styles) SelectedColor() color.Color {
	if s.selected == "" {
		return lipgloss.ANSIColor(220)
	}
	return lipgloss.Color(s.selected)
}
