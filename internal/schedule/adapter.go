package schedule

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date-only values are midnight UTC.
const dateLayout = "2006-01-02"

// ParseTimestamp parses s with local time as the zone of values that
// carry no offset.
func ParseTimestamp(s string) time.Time {
	return ParseTimestampIn(s, time.Local)
}

// ParseTimestampIn never fails: an unparseable value yields the zero time,
// which downstream code treats as an invalid timestamp. Date-times without
// an offset are read in loc.
func ParseTimestampIn(s string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func FromEvent(ev Event) Entry {
	return FromEventIn(ev, time.Local)
}

// FromEventIn adapts ev, reading offset-less timestamps in loc.
func FromEventIn(ev Event, loc *time.Location) Entry {
	kind := Kind(ev.Kind)
	if kind == "" {
		kind = KindEvent
	}
	return Entry{
		ID:          ev.ID,
		Kind:        kind,
		Start:       ParseTimestampIn(ev.BeginAt, loc),
		End:         ParseTimestampIn(ev.EndAt, loc),
		Title:       ev.Name,
		Description: ev.Description,
		Location:    ev.Location,
	}
}

// ExamToEvent converts an exam into the event shape. The description lists
// the exam's projects and is empty when there are none.
func ExamToEvent(exam Exam) Event {
	var names []string
	for _, p := range exam.Projects {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}

	description := ""
	if len(names) > 0 {
		description = "Exam for " + strings.Join(names, ", ")
	}

	return Event{
		ID:          exam.ID,
		Kind:        string(KindExam),
		Name:        exam.Name,
		Description: description,
		Location:    exam.Location,
		BeginAt:     exam.BeginAt,
		EndAt:       exam.EndAt,
		MaxPeople:   exam.MaxPeople,
		Subscribers: exam.Subscribers,
	}
}

func FromExam(exam Exam) Entry {
	return FromEventIn(ExamToEvent(exam), time.Local)
}

func FromExamIn(exam Exam, loc *time.Location) Entry {
	return FromEventIn(ExamToEvent(exam), loc)
}
