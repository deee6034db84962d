package ui

import (
	"github.com/cwarden/agenda/internal/config"
	"github.com/cwarden/agenda/internal/schedule"
)

// RenderPanel renders data as the dashboard list would appear in a
// width x height area, without the status bar. It returns the view with
// the number of entries shown and available.
func RenderPanel(cfg *config.Config, data *schedule.Data, width, height int) (string, int, int) {
	styles := NewStyles(cfg)
	surface := NewSurface(cfg.Title, width, cfg.Padding, cfg.FallbackHeight, styles.Title)

	entries := schedule.MergeIn(data, cfg.Location())
	cards := buildCards(entries, &styles, cfg.Location(), cfg.TimeFormat)
	items := make([]Renderable, len(cards))
	for i, c := range cards {
		items[i] = c
	}

	shown := surface.Fill(items, height)
	return surface.View(), shown, len(entries)
}
