package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/cwarden/agenda/internal/config"
)

type KeyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding
	Refresh   key.Binding
	Open      key.Binding
	Close     key.Binding
	Next      key.Binding
	Prev      key.Binding
}

func NewKeyMap(cfg *config.Config) KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      binding(cfg.Key("quit"), "quit"),
		Help:      binding(cfg.Key("help"), "toggle help"),
		Refresh:   binding(cfg.Key("refresh"), "reload data"),
		Open:      binding(cfg.Key("open"), "open details"),
		Close:     binding(cfg.Key("close"), "close details"),
		Next:      binding(cfg.Key("next"), "next entry", "down"),
		Prev:      binding(cfg.Key("prev"), "previous entry", "up"),
	}
}

func binding(k, help string, extra ...string) key.Binding {
	var keys []string
	if k != "" {
		keys = append(keys, k)
	}
	keys = append(keys, extra...)
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(k, help))
}

// HelpLines lists every binding as "key - description".
func (k KeyMap) HelpLines() []string {
	var lines []string
	for _, b := range []key.Binding{k.Next, k.Prev, k.Open, k.Close, k.Refresh, k.Help, k.Quit} {
		h := b.Help()
		lines = append(lines, "  "+padRight(h.Key, 8)+"- "+h.Desc)
	}
	return lines
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
