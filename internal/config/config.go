package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Data settings
	DataFiles   []string
	Watch       bool
	RefreshCron string

	// Display settings
	Timezone       string
	TimeFormat     string
	DateFormat     string
	Title          string
	Padding        int
	FallbackHeight int
	Mouse          bool

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Logging
	LogFile  string
	LogLevel string
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		DataFiles:   []string{filepath.Join(home, ".agenda.json")},
		Watch:       true,
		RefreshCron: "",

		Timezone:       "Local",
		TimeFormat:     "15:04",
		DateFormat:     "Jan 2, 2006",
		Title:          "Upcoming",
		Padding:        1,
		FallbackHeight: 4,
		Mouse:          true,

		Colors: map[string]string{
			"event":       "39",
			"exam":        "196",
			"hackathon":   "208",
			"workshop":    "40",
			"association": "99",
			"meet_up":     "220",
			"conference":  "63",
			"default":     "240",
			"selected":    "220",
		},

		KeyBindings: map[string]string{
			"quit":    "q",
			"help":    "?",
			"refresh": "r",
			"open":    "enter",
			"close":   "esc",
			"next":    "j",
			"prev":    "k",
		},

		LogFile:  "",
		LogLevel: "info",
	}
}

// LoadConfig loads path when it is non-empty. Otherwise the first existing
// file among the standard locations is used; with none present the
// defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		if err := config.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		return config, nil
	}

	configPaths := []string{
		os.Getenv("AGENDA_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "agenda", "agendarc"),
		filepath.Join(os.Getenv("HOME"), ".config", "agenda", "agendarc"),
		filepath.Join(os.Getenv("HOME"), ".agendarc"),
	}

	for _, path := range configPaths {
		if path == "" || path == filepath.Join("agenda", "agendarc") {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}

	// color kind color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = strings.Trim(strings.TrimSpace(matches[2]), `"'`)
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	value = strings.Trim(value, `"'`)

	switch name {
	case "data_file", "data_files":
		files := strings.Split(value, ",")
		for i, file := range files {
			files[i] = expandHome(strings.TrimSpace(file))
		}
		c.DataFiles = files

	case "watch":
		c.Watch = parseBool(value)

	case "refresh_cron":
		c.RefreshCron = value

	case "timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("invalid timezone: %s", value)
		}
		c.Timezone = value

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "title":
		c.Title = value

	case "padding":
		padding, err := strconv.Atoi(value)
		if err != nil || padding < 0 {
			return fmt.Errorf("invalid padding: %s", value)
		}
		c.Padding = padding

	case "fallback_height":
		height, err := strconv.Atoi(value)
		if err != nil || height < 0 {
			return fmt.Errorf("invalid fallback_height: %s", value)
		}
		c.FallbackHeight = height

	case "mouse":
		c.Mouse = parseBool(value)

	case "log_file":
		c.LogFile = expandHome(value)

	case "log_level":
		c.LogLevel = strings.ToLower(value)

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// Location resolves Timezone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Color returns the configured color for kind, or the "default" color.
func (c *Config) Color(kind string) string {
	if color, ok := c.Colors[kind]; ok {
		return color
	}
	return c.Colors["default"]
}

// Key returns the key bound to action.
func (c *Config) Key(action string) string {
	return c.KeyBindings[action]
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
