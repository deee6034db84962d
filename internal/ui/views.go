package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.helpVisible {
		return m.viewHelp()
	}

	body := m.surface.View()
	if m.state == StateEmpty {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Help.Render("No schedule data"))
	}

	status := m.renderStatusBar()
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(body).X(0).Y(0).Z(0),
		lipgloss.NewLayer(status).X(0).Y(m.height - lipgloss.Height(status)).Z(0),
	}
	if overlay := m.dialog.Layer(m.width, m.height); overlay != nil {
		layers = append(layers, overlay)
	}

	return lipgloss.NewCanvas(layers...).Render()
}

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("Agenda Help"),
		"",
		m.styles.Normal.Render("Keys:"),
	}
	for _, line := range m.keys.HelpLines() {
		help = append(help, m.styles.Help.Render(line))
	}
	help = append(help,
		"",
		m.styles.Normal.Render("Mouse:"),
		m.styles.Help.Render("  click an entry to open it, click outside the details to close"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	)

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | %d of %d entries",
		time.Now().In(m.loc).Format(m.config.DateFormat),
		len(m.cards),
		len(m.entries))

	right := fmt.Sprintf("%s for help | %s to quit ", m.keys.Help.Help().Key, m.keys.Quit.Help().Key)

	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	middle := strings.Repeat(" ", width)

	return m.styles.Help.Render(left + middle + right)
}
