package schedule

import (
	"sort"
	"time"
)

// Merge adapts every event and exam in data and orders them by start time.
// Events come before exams in the concatenation and the sort is stable, so
// entries with equal start times keep that order.
func Merge(data *Data) []Entry {
	return MergeIn(data, time.Local)
}

// MergeIn is Merge with offset-less timestamps read in loc.
func MergeIn(data *Data, loc *time.Location) []Entry {
	if data == nil {
		return nil
	}

	entries := make([]Entry, 0, len(data.Events)+len(data.Exams))
	for _, ev := range data.Events {
		entries = append(entries, FromEventIn(ev, loc))
	}
	for _, exam := range data.Exams {
		entries = append(entries, FromExamIn(exam, loc))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() < entries[j].SortKey()
	})

	return entries
}
