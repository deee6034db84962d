package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"gopkg.in/yaml.v3"
)

// Decode parses a data file, choosing the format from the file extension.
// Unknown extensions are treated as JSON.
func Decode(path string, body []byte) (*Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(body)
	case ".ics", ".ical":
		return DecodeICS(body)
	default:
		return DecodeJSON(body)
	}
}

// DecodeJSON returns nil data for a null document.
func DecodeJSON(body []byte) (*Data, error) {
	var data *Data
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse schedule JSON: %w", err)
	}
	return data, nil
}

// DecodeYAML returns nil data for a null or empty document.
func DecodeYAML(body []byte) (*Data, error) {
	var data *Data
	if err := yaml.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse schedule YAML: %w", err)
	}
	return data, nil
}

// DecodeICS turns each VEVENT into an Event. The first CATEGORIES value
// becomes the kind; VEVENTs without one are plain events. ICS feeds carry
// no exams. Event ids are derived from the UID, so the same VEVENT gets the
// same id in every feed and distinct VEVENTs do not collide across feeds.
func DecodeICS(body []byte) (*Data, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("failed to parse schedule ICS: empty body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule ICS: %w", err)
	}

	data := &Data{}
	for _, ve := range cal.Events() {
		ev := Event{
			ID:          icsID(ve),
			Kind:        string(KindEvent),
			Name:        propValue(ve, ical.ComponentPropertySummary),
			Description: propValue(ve, ical.ComponentPropertyDescription),
			Location:    propValue(ve, ical.ComponentPropertyLocation),
		}
		if cat := propValue(ve, ical.ComponentPropertyCategories); cat != "" {
			ev.Kind = strings.ToLower(strings.TrimSpace(strings.Split(cat, ",")[0]))
		}
		if start, err := ve.GetStartAt(); err == nil {
			ev.BeginAt = start.UTC().Format(time.RFC3339)
		}
		if end, err := ve.GetEndAt(); err == nil {
			ev.EndAt = end.UTC().Format(time.RFC3339)
		}
		data.Events = append(data.Events, ev)
	}

	return data, nil
}

// icsID hashes the UID, or the summary and start of a VEVENT without one.
func icsID(ve *ical.VEvent) int {
	key := propValue(ve, ical.ComponentPropertyUniqueId)
	if key == "" {
		key = propValue(ve, ical.ComponentPropertySummary) + "\x00" + propValue(ve, ical.ComponentPropertyDtStart)
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() & 0x7fffffff)
}

func propValue(ve *ical.VEvent, prop ical.ComponentProperty) string {
	p := ve.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}
