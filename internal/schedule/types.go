package schedule

import (
	"strconv"
	"time"
)

type Kind string

const (
	KindEvent Kind = "event"
	KindExam  Kind = "exam"
)

// Event is a calendar event as delivered by the data holder. Timestamps
// stay raw strings until they are adapted.
type Event struct {
	ID          int    `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
	BeginAt     string `json:"begin_at" yaml:"begin_at"`
	EndAt       string `json:"end_at" yaml:"end_at"`
	MaxPeople   *int   `json:"max_people,omitempty" yaml:"max_people,omitempty"`
	Subscribers int    `json:"nbr_subscribers" yaml:"nbr_subscribers"`
}

type Project struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// Exam has no description of its own; one is synthesized from its projects.
type Exam struct {
	ID          int       `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Location    string    `json:"location" yaml:"location"`
	BeginAt     string    `json:"begin_at" yaml:"begin_at"`
	EndAt       string    `json:"end_at" yaml:"end_at"`
	MaxPeople   *int      `json:"max_people,omitempty" yaml:"max_people,omitempty"`
	Subscribers int       `json:"nbr_subscribers" yaml:"nbr_subscribers"`
	Projects    []Project `json:"projects" yaml:"projects"`
}

// Data is one snapshot of the schedule. A nil *Data means no data.
type Data struct {
	Events []Event `json:"events" yaml:"events"`
	Exams  []Exam  `json:"exams" yaml:"exams"`
}

// Entry is the normalized, displayable form of an event or an exam.
// Start and End are the zero time when the source timestamp was invalid.
type Entry struct {
	ID          int
	Kind        Kind
	Start       time.Time
	End         time.Time
	Title       string
	Description string
	Location    string
}

// SortKey is the start time in Unix milliseconds, or 0 when the start
// timestamp is invalid.
func (e Entry) SortKey() int64 {
	if e.Start.IsZero() {
		return 0
	}
	return e.Start.UnixMilli()
}

// Key identifies an entry within one snapshot.
func (e Entry) Key() string {
	return string(e.Kind) + "/" + strconv.Itoa(e.ID)
}
