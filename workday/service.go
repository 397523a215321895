// Package workday reconstructs today's work session from history events and
// aggregates it into a Summary.
package workday

import (
	"time"

	"github.com/rs/zerolog"

	"workday/history"
	"workday/internal/classify"
	"workday/internal/timeutil"
	"workday/worklog"
)

type Options struct {
	Linger   time.Duration
	Quota    time.Duration
	EndHour  int
	Location *time.Location
}

type Result struct {
	LinesRead    int
	LinesSkipped int
	Events       int
	Selected     []time.Time
	Spans        []worklog.Span
	Summary      Summary
}

type Service struct {
	opts   Options
	logger zerolog.Logger
}

func NewService(opts Options, logger zerolog.Logger) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Service{opts: opts, logger: logger}
}

// ReportFile runs the pipeline over a history file. Reading the file is the
// only step that can fail.
func (s *Service) ReportFile(path string, now time.Time) (*Result, error) {
	extracted, err := history.ExtractFile(path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("file", path).
		Int("lines_read", extracted.LinesRead).
		Int("lines_skipped", extracted.LinesSkipped).
		Int("events", len(extracted.Events)).
		Msg("History extracted")

	result := s.Report(extracted.Events, now)
	result.LinesRead = extracted.LinesRead
	result.LinesSkipped = extracted.LinesSkipped
	return result, nil
}

// Report runs the pipeline over events in log order (oldest line first). now
// fixes the reference date once for the whole run.
func (s *Service) Report(events []time.Time, now time.Time) *Result {
	today := timeutil.DateOf(now.In(s.opts.Location))

	selected := SelectToday(Reversed(events), today, s.opts.EndHour, s.opts.Location)
	chronological := Chronological(selected)
	spans := worklog.BuildSpans(chronological)
	work, breaks := classify.ClassifySpans(spans, s.opts.Linger)
	summary := Summarize(today, work, breaks, s.opts.Linger, s.opts.Quota)

	s.logger.Debug().
		Str("date", today.String()).
		Int("end_hour", s.opts.EndHour).
		Int("selected", len(selected)).
		Int("spans", len(spans)).
		Int("work_spans", len(work)).
		Int("breaks", len(breaks)).
		Dur("worked", summary.Worked).
		Msg("Workday reconstructed")

	if len(events) > 0 && len(selected) == 0 {
		s.logger.Info().Str("date", today.String()).Msg("No history events for today")
	}

	return &Result{
		Events:   len(events),
		Selected: chronological,
		Spans:    spans,
		Summary:  summary,
	}
}
