package workday

import (
	"slices"
	"time"

	"workday/internal/timeutil"
)

// SelectToday bounds a newest-first event list to today's session.
//
// Events whose time-of-day in loc is later than endHour:00:00 are skipped from
// the newest end. From the first event at or before the boundary, events are
// taken while their date in loc equals today; the first event from another
// date ends the window. The result stays newest-first and carries loc.
//
// The boundary is a heuristic, not a calendar rule: it assumes work never
// starts after endHour, so anything later at the head of the log belongs to a
// session that has not been counted yet.
func SelectToday(newestFirst []time.Time, today timeutil.Date, endHour int, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}

	i := 0
	for i < len(newestFirst) && timeutil.AfterHour(newestFirst[i].In(loc), endHour) {
		i++
	}

	selected := make([]time.Time, 0, len(newestFirst)-i)
	for ; i < len(newestFirst); i++ {
		local := newestFirst[i].In(loc)
		if timeutil.DateOf(local) != today {
			break
		}
		selected = append(selected, local)
	}
	return selected
}

// Reversed returns a reversed copy of events.
func Reversed(events []time.Time) []time.Time {
	out := slices.Clone(events)
	if out == nil {
		out = []time.Time{}
	}
	slices.Reverse(out)
	return out
}

// Chronological orders a selected window oldest-first. Histories shared by
// several shells can hold slightly out-of-order stamps; the stable sort keeps
// every span non-negative without reordering already sorted input.
func Chronological(newestFirst []time.Time) []time.Time {
	events := Reversed(newestFirst)
	slices.SortStableFunc(events, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return events
}
