package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cwarden/agenda/internal/config"
	appLog "github.com/cwarden/agenda/internal/log"
	"github.com/cwarden/agenda/internal/schedule"
	"github.com/cwarden/agenda/internal/ui"
)

var (
	cfgFile     string
	dataFiles   []string
	useStdin    bool
	stdinFormat string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "A terminal dashboard of upcoming campus events and exams",
	Long: `Agenda shows upcoming events and exams as a list of cards sized to the
terminal. Entries that do not fit are left out; select one to see its details.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringSliceVarP(&dataFiles, "file", "f", []string{}, "Schedule file(s) to use (can be specified multiple times)")
	rootCmd.PersistentFlags().BoolVar(&useStdin, "stdin", false, "Read the schedule from standard input")
	rootCmd.PersistentFlags().StringVar(&stdinFormat, "format", "json", "Format of the schedule read from standard input (json, yaml, ics)")
}

func initConfig() {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(dataFiles) > 0 {
		cfg.DataFiles = dataFiles
	}
	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))
}

// buildSource returns the schedule source selected by flags and config,
// and a function that releases its watchers and pollers.
func buildSource() (schedule.Source, func(), error) {
	if useStdin {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading standard input: %w", err)
		}
		data, err := schedule.Decode("stdin."+stdinFormat, body)
		if err != nil {
			return nil, nil, fmt.Errorf("error decoding standard input: %w", err)
		}
		return schedule.NewMemorySource(data), func() {}, nil
	}

	if len(cfg.DataFiles) == 0 {
		return nil, nil, fmt.Errorf("no schedule files configured")
	}

	var (
		files   []*schedule.FileSource
		members []schedule.Source
	)
	for _, path := range cfg.DataFiles {
		fs, err := schedule.NewFileSource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		files = append(files, fs)
		members = append(members, fs)
	}

	var source schedule.Source
	var reload func() error
	if len(files) == 1 {
		source = files[0]
		reload = files[0].Reload
	} else {
		composite := schedule.NewCompositeSource(members...)
		source = composite
		reload = composite.Reload
	}

	var stops []func()
	if cfg.Watch {
		for _, fs := range files {
			if err := fs.Watch(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", fs.Path(), err)
				continue
			}
			stops = append(stops, func() { _ = fs.StopWatching() })
		}
	}
	if cfg.RefreshCron != "" {
		poller, err := schedule.NewPoller(cfg.RefreshCron, reload)
		if err != nil {
			return nil, nil, err
		}
		poller.Start()
		stops = append(stops, poller.Stop)
	}

	return source, func() {
		for _, stop := range stops {
			stop()
		}
	}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "agenda")
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer f.Close()
		appLog.SetOutput(f)
	} else {
		appLog.SetOutput(io.Discard)
	}

	source, stop, err := buildSource()
	if err != nil {
		return err
	}
	defer stop()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if useStdin {
		opts = append(opts, tea.WithInputTTY())
	}

	model := ui.NewModel(cfg, source)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
