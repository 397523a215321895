package workday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(linger time.Duration) *Service {
	return NewService(Options{
		Linger:   linger,
		Quota:    8 * time.Hour,
		EndHour:  17,
		Location: time.UTC,
	}, zerolog.Nop())
}

func TestReport_TwoCommandsFiveMinutesApart(t *testing.T) {
	t.Parallel()

	events := []time.Time{time.Unix(1000, 0), time.Unix(1300, 0)}
	result := newTestService(30*time.Minute).Report(events, time.Unix(1000, 0))

	summary := result.Summary
	require.Len(t, summary.WorkSpans, 1)
	assert.Empty(t, summary.Breaks)
	assert.Equal(t, 5*time.Minute, summary.Worked)
	assert.Equal(t, 8*time.Hour-5*time.Minute, summary.Remaining)
	require.True(t, summary.HasActivity())
	assert.Equal(t, int64(1000), summary.Start.Unix())
	assert.Equal(t, int64(1300), summary.End.Unix())
}

func TestReport_ZeroLingerTurnsEverySpanIntoABreak(t *testing.T) {
	t.Parallel()

	events := []time.Time{time.Unix(1000, 0), time.Unix(1300, 0)}
	result := newTestService(0).Report(events, time.Unix(1000, 0))

	summary := result.Summary
	assert.Empty(t, summary.WorkSpans)
	require.Len(t, summary.Breaks, 1)
	assert.False(t, summary.HasActivity())
	assert.Nil(t, summary.Start)
	assert.Nil(t, summary.End)
	assert.Equal(t, time.Duration(0), summary.Worked)
	assert.Equal(t, 8*time.Hour, summary.Remaining)
}

func TestReport_ExcludesYesterday(t *testing.T) {
	t.Parallel()

	yesterday := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	result := newTestService(30*time.Minute).Report([]time.Time{yesterday, today}, today.Add(3*time.Hour))

	require.Len(t, result.Selected, 1)
	assert.True(t, result.Selected[0].Equal(today))
	assert.Empty(t, result.Spans)
	assert.False(t, result.Summary.HasActivity())
	assert.Equal(t, time.Duration(0), result.Summary.Worked)
}

func TestReport_GapsOfFiveFortyFiveAndThreeMinutes(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	events := []time.Time{
		start,
		start.Add(5 * time.Minute),
		start.Add(50 * time.Minute),
		start.Add(53 * time.Minute),
	}
	result := newTestService(30*time.Minute).Report(events, start)

	summary := result.Summary
	require.Len(t, summary.WorkSpans, 2)
	require.Len(t, summary.Breaks, 1)
	assert.Equal(t, 8*time.Minute, summary.Worked)
	assert.Equal(t, 45*time.Minute, summary.Breaks[0].Duration)
	assert.True(t, summary.Breaks[0].Start.Equal(start.Add(5*time.Minute)))
	assert.True(t, summary.Breaks[0].End.Equal(start.Add(50*time.Minute)))
	assert.True(t, summary.Start.Equal(start))
	assert.True(t, summary.End.Equal(start.Add(53*time.Minute)))
}

func TestReport_SkipsEventsAfterWorkdayEnd(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	events := []time.Time{
		day.Add(9 * time.Hour),
		day.Add(9*time.Hour + 10*time.Minute),
		day.Add(18 * time.Hour),
		day.Add(18*time.Hour + 5*time.Minute),
	}
	result := newTestService(30*time.Minute).Report(events, day.Add(19*time.Hour))

	require.Len(t, result.Selected, 2)
	assert.Equal(t, 10*time.Minute, result.Summary.Worked)
	assert.True(t, result.Summary.End.Equal(day.Add(9*time.Hour+10*time.Minute)))
}

func TestReport_UsesConfiguredLocationForDateAndBoundary(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC+2", 2*60*60)
	service := NewService(Options{
		Linger:   30 * time.Minute,
		Quota:    8 * time.Hour,
		EndHour:  17,
		Location: zone,
	}, zerolog.Nop())

	// 22:30 and 22:40 UTC on March 1 are 00:30 and 00:40 on March 2 in zone.
	events := []time.Time{
		time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 22, 40, 0, 0, time.UTC),
	}
	result := service.Report(events, time.Date(2026, 3, 2, 8, 0, 0, 0, zone))

	require.Len(t, result.Selected, 2)
	assert.Equal(t, zone, result.Selected[0].Location())
	assert.Equal(t, 10*time.Minute, result.Summary.Worked)
	assert.Equal(t, "2026-03-02", result.Summary.Date.String())
}

func TestReport_OutOfOrderEventsNeverProduceNegativeSpans(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	events := []time.Time{start, start.Add(10 * time.Minute), start.Add(4 * time.Minute)}
	result := newTestService(30*time.Minute).Report(events, start)

	require.Len(t, result.Spans, 2)
	for _, span := range result.Spans {
		assert.GreaterOrEqual(t, span.Duration, time.Duration(0))
	}
	assert.Equal(t, 10*time.Minute, result.Summary.Worked)
}

func TestReport_WorkedEqualsSumForAnyLinger(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	events := []time.Time{start}
	for _, gap := range []time.Duration{time.Minute, 31 * time.Minute, 12 * time.Minute, 2 * time.Hour, 7 * time.Second} {
		events = append(events, events[len(events)-1].Add(gap))
	}

	total := events[len(events)-1].Sub(events[0])
	lingers := []time.Duration{0, time.Minute, 30 * time.Minute, time.Duration(1<<63 - 1)}
	for _, linger := range lingers {
		summary := newTestService(linger).Report(events, start).Summary
		var sum time.Duration
		for _, span := range summary.WorkSpans {
			sum += span.Duration
		}
		assert.Equal(t, sum, summary.Worked, "linger %s", linger)
		assert.Equal(t, total, summary.Worked+summary.BreakTime(), "linger %s", linger)
	}
}

func TestReportFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".zsh_history")
	content := ": 1000:0;cmd1\nnot a record\n: 1300:0;cmd2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	result, err := newTestService(30*time.Minute).ReportFile(path, time.Unix(1000, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, result.LinesRead)
	assert.Equal(t, 1, result.LinesSkipped)
	assert.Equal(t, 2, result.Events)
	assert.Equal(t, 5*time.Minute, result.Summary.Worked)
}

func TestReportFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := newTestService(30*time.Minute).ReportFile(filepath.Join(t.TempDir(), "nope"), time.Now())
	require.Error(t, err)
}
