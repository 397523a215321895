package classify

import (
	"time"

	"workday/worklog"
)

// ClassifySpans splits spans into work and break partitions. A span is work
// when its duration is strictly below linger; everything else is a break.
// Both partitions keep the input order.
func ClassifySpans(spans []worklog.Span, linger time.Duration) ([]worklog.Span, []worklog.Span) {
	work := make([]worklog.Span, 0, len(spans))
	breaks := make([]worklog.Span, 0)

	for _, span := range spans {
		if IsWork(span, linger) {
			work = append(work, span)
			continue
		}
		breaks = append(breaks, span)
	}

	return work, breaks
}

func IsWork(span worklog.Span, linger time.Duration) bool {
	return span.Duration < linger
}
