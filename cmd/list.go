package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appLog "github.com/cwarden/agenda/internal/log"
	"github.com/cwarden/agenda/internal/schedule"
	"github.com/cwarden/agenda/internal/ui"
)

var (
	listRows  int
	listWidth int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming entries and exit",
	Long: `List the merged, time-ordered entries in a simple text format and exit.
With --rows, print the panel exactly as it would fit in that many rows.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listRows, "rows", 0, "Render the fitted panel for this many rows")
	listCmd.Flags().IntVar(&listWidth, "width", 80, "Panel width used with --rows")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Ensure config is loaded
	if cfg == nil {
		initConfig()
	}
	appLog.SetOutput(os.Stderr)

	source, stop, err := buildSource()
	if err != nil {
		return err
	}
	defer stop()

	data := source.Current()

	if listRows > 0 {
		view, shown, total := ui.RenderPanel(cfg, data, listWidth, listRows)
		fmt.Println(view)
		fmt.Printf("%d of %d entries\n", shown, total)
		return nil
	}

	loc := cfg.Location()
	entries := schedule.MergeIn(data, loc)
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	for _, e := range entries {
		when := "Unknown time"
		if !e.Start.IsZero() {
			when = e.Start.In(loc).Format(cfg.DateFormat + " " + cfg.TimeFormat)
		}

		fmt.Printf("  %s - %s [%s]\n", when, e.Title, e.Kind)
		if d := schedule.EstimateDuration(e.Start, e.End); d != "" {
			fmt.Printf("    %s\n", d)
		}
		if e.Location != "" {
			fmt.Printf("    Location: %s\n", e.Location)
		}
	}

	return nil
}
