package worklog

import "time"

// Span is the interval between two chronologically adjacent history events.
type Span struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// NewSpan pairs two events. Callers pass events in ascending order, so the
// duration is never negative.
func NewSpan(start, end time.Time) Span {
	return Span{
		Start:    start,
		End:      end,
		Duration: end.Sub(start),
	}
}

// BuildSpans pairs each event with its successor. Fewer than two events
// produce no spans.
func BuildSpans(events []time.Time) []Span {
	if len(events) < 2 {
		return []Span{}
	}

	spans := make([]Span, 0, len(events)-1)
	for i := 0; i+1 < len(events); i++ {
		spans = append(spans, NewSpan(events[i], events[i+1]))
	}
	return spans
}

// Minutes returns the whole minutes of the span, truncated toward zero.
func (s Span) Minutes() int64 {
	return int64(s.Duration / time.Minute)
}
