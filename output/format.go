package output

import (
	"fmt"
	"time"

	"workday/internal/timeutil"
	"workday/workday"
	"workday/worklog"
)

const unknownTime = "<Unknown>"

// HoursMinutes renders d as "<H>h<M>m" using whole minutes.
func HoursMinutes(d time.Duration) string {
	minutes := wholeMinutes(d)
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

func wholeMinutes(d time.Duration) int64 {
	return int64(d / time.Minute)
}

func clockOrUnknown(value *time.Time) string {
	if value == nil {
		return unknownTime
	}
	return timeutil.ClockString(*value)
}

func clockOrEmpty(value *time.Time) string {
	if value == nil {
		return ""
	}
	return timeutil.ClockString(*value)
}

// Report is the serialisable view of a workday.Summary.
type Report struct {
	Date             string        `json:"date" yaml:"date"`
	Start            *string       `json:"start" yaml:"start"`
	End              *string       `json:"end" yaml:"end"`
	Worked           string        `json:"worked" yaml:"worked"`
	WorkedMinutes    int64         `json:"worked_minutes" yaml:"worked_minutes"`
	Remaining        string        `json:"remaining" yaml:"remaining"`
	RemainingMinutes int64         `json:"remaining_minutes" yaml:"remaining_minutes"`
	QuotaMinutes     int64         `json:"quota_minutes" yaml:"quota_minutes"`
	LingerMinutes    int64         `json:"linger_minutes" yaml:"linger_minutes"`
	WorkSpans        int           `json:"work_spans" yaml:"work_spans"`
	Breaks           []BreakReport `json:"breaks" yaml:"breaks"`
}

type BreakReport struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Minutes int64  `json:"minutes" yaml:"minutes"`
}

func NewReport(summary workday.Summary) Report {
	report := Report{
		Date:             summary.Date.String(),
		Worked:           HoursMinutes(summary.Worked),
		WorkedMinutes:    wholeMinutes(summary.Worked),
		Remaining:        HoursMinutes(summary.Remaining),
		RemainingMinutes: wholeMinutes(summary.Remaining),
		QuotaMinutes:     wholeMinutes(summary.Quota),
		LingerMinutes:    wholeMinutes(summary.Linger),
		WorkSpans:        len(summary.WorkSpans),
		Breaks:           make([]BreakReport, 0, len(summary.Breaks)),
	}
	if summary.Start != nil {
		start := timeutil.ClockString(*summary.Start)
		report.Start = &start
	}
	if summary.End != nil {
		end := timeutil.ClockString(*summary.End)
		report.End = &end
	}
	for _, span := range summary.Breaks {
		report.Breaks = append(report.Breaks, newBreakReport(span))
	}
	return report
}

func newBreakReport(span worklog.Span) BreakReport {
	return BreakReport{
		Start:   timeutil.ClockString(span.Start),
		End:     timeutil.ClockString(span.End),
		Minutes: span.Minutes(),
	}
}
