package workday

import (
	"time"

	"workday/internal/timeutil"
	"workday/worklog"
)

// Summary is the aggregated report for one workday. Start and End are nil
// when no work span was observed.
type Summary struct {
	Date      timeutil.Date
	Start     *time.Time
	End       *time.Time
	Worked    time.Duration
	Remaining time.Duration
	Quota     time.Duration
	Linger    time.Duration
	WorkSpans []worklog.Span
	Breaks    []worklog.Span
}

// Summarize reduces the classified spans into the day's figures.
func Summarize(date timeutil.Date, work, breaks []worklog.Span, linger, quota time.Duration) Summary {
	summary := Summary{
		Date:      date,
		Quota:     quota,
		Linger:    linger,
		WorkSpans: work,
		Breaks:    breaks,
	}

	if len(work) > 0 {
		start := work[0].Start
		end := work[len(work)-1].End
		summary.Start = &start
		summary.End = &end
	}

	summary.Worked = TotalDuration(work)
	summary.Remaining = Remaining(quota, summary.Worked)
	return summary
}

// TotalDuration sums span durations. An addition that would overflow is
// skipped and the running total kept.
func TotalDuration(spans []worklog.Span) time.Duration {
	total := time.Duration(0)
	for _, span := range spans {
		if sum, ok := checkedAdd(total, span.Duration); ok {
			total = sum
		}
	}
	return total
}

// Remaining is quota minus worked, clamped at zero.
func Remaining(quota, worked time.Duration) time.Duration {
	diff, ok := checkedAdd(quota, -worked)
	if worked == minDuration {
		ok = false
	}
	if !ok || diff < 0 {
		return 0
	}
	return diff
}

func (s Summary) HasActivity() bool {
	return s.Start != nil && s.End != nil
}

func (s Summary) BreakTime() time.Duration {
	return TotalDuration(s.Breaks)
}

const minDuration = time.Duration(-1 << 63)

func checkedAdd(a, b time.Duration) (time.Duration, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return a, false
	}
	return sum, true
}
