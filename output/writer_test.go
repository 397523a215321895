package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"workday/internal/classify"
	"workday/internal/timeutil"
	"workday/workday"
	"workday/worklog"
)

func TestTextWriter_WithBreaks(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute, 45*time.Minute, 3*time.Minute)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write text: %v", err)
	}

	want := strings.Join([]string{
		"Breaks (30m or longer):",
		"  - 09:05:00-09:50:00 45m",
		"Start: 09:00:00",
		"End: 09:53:00",
		"Worked: 0h8m",
		"Remaining: 7h52m",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected text report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTextWriter_NoActivity(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 0, 5*time.Minute)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write text: %v", err)
	}

	text := buf.String()
	for _, expected := range []string{
		"  - 09:00:00-09:05:00 5m\n",
		"Start: <Unknown>\n",
		"End: <Unknown>\n",
		"Worked: 0h0m\n",
		"Remaining: 8h0m\n",
	} {
		if !strings.Contains(text, expected) {
			t.Fatalf("expected %q in report:\n%s", expected, text)
		}
	}
}

func TestTextWriter_NoBreaks(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write text: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Breaks (30m or longer): None\n") {
		t.Fatalf("expected None marker, got:\n%s", buf.String())
	}
}

func TestTextWriter_ColorAddsEscapeCodes(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute)

	var buf bytes.Buffer
	if err := (&TextWriter{Color: true}).Write(&buf, summary); err != nil {
		t.Fatalf("write text: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escape codes, got %q", buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute, 45*time.Minute, 3*time.Minute)

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if report.WorkedMinutes != 8 || report.Worked != "0h8m" {
		t.Fatalf("unexpected worked: %d / %s", report.WorkedMinutes, report.Worked)
	}
	if report.Start == nil || *report.Start != "09:00:00" {
		t.Fatalf("unexpected start: %v", report.Start)
	}
	if len(report.Breaks) != 1 || report.Breaks[0].Minutes != 45 {
		t.Fatalf("unexpected breaks: %+v", report.Breaks)
	}
}

func TestJSONWriter_UnknownStartIsNull(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 0, 5*time.Minute)

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"start": null`) {
		t.Fatalf("expected null start, got:\n%s", buf.String())
	}
}

func TestYAMLWriter(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute, 45*time.Minute)

	var buf bytes.Buffer
	if err := (&YAMLWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	var report Report
	if err := yaml.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if report.Date != "2026-03-02" {
		t.Fatalf("unexpected date: %s", report.Date)
	}
	if report.RemainingMinutes != 475 {
		t.Fatalf("unexpected remaining minutes: %d", report.RemainingMinutes)
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute, 45*time.Minute, 3*time.Minute)

	var buf bytes.Buffer
	if err := (&CSVWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(rows))
	}
	want := []string{"2026-03-02", "09:00:00", "09:53:00", "8", "472", "2", "1", "45"}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Fatalf("column %s: expected %q, got %q", rows[0][i], want[i], rows[1][i])
		}
	}
}

func TestExcelWriter(t *testing.T) {
	t.Parallel()

	summary := summaryWithGaps(t, 30*time.Minute, 5*time.Minute, 45*time.Minute, 3*time.Minute)

	var buf bytes.Buffer
	if err := (&ExcelWriter{}).Write(&buf, summary); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open excel: %v", err)
	}
	defer file.Close()

	worked, err := file.GetCellValue(summarySheet, "D2")
	if err != nil {
		t.Fatalf("read worked cell: %v", err)
	}
	if worked != "8" {
		t.Fatalf("expected 8 worked minutes, got %q", worked)
	}

	breakStart, err := file.GetCellValue(breaksSheet, "A2")
	if err != nil {
		t.Fatalf("read break cell: %v", err)
	}
	if breakStart != "09:05:00" {
		t.Fatalf("expected break start 09:05:00, got %q", breakStart)
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	for _, format := range SupportedFormats() {
		if _, err := WriterForFormat(format, Options{}); err != nil {
			t.Fatalf("format %s: unexpected error: %v", format, err)
		}
	}
	if _, err := WriterForFormat("pdf", Options{}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"report.csv":  "csv",
		"report.XLSX": "excel",
		"report.json": "json",
		"report.yml":  "yaml",
		"report.txt":  "text",
		"report":      "text",
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Fatalf("DetectFormat(%q): expected %s, got %s", path, want, got)
		}
	}
}

func TestHoursMinutes(t *testing.T) {
	t.Parallel()

	tests := map[time.Duration]string{
		0:                            "0h0m",
		59 * time.Second:             "0h0m",
		5 * time.Minute:              "0h5m",
		7*time.Hour + 52*time.Minute: "7h52m",
		25*time.Hour + time.Minute:   "25h1m",
	}
	for d, want := range tests {
		if got := HoursMinutes(d); got != want {
			t.Fatalf("HoursMinutes(%s): expected %s, got %s", d, want, got)
		}
	}
}

func summaryWithGaps(t *testing.T, linger time.Duration, gaps ...time.Duration) workday.Summary {
	t.Helper()

	current := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	events := []time.Time{current}
	for _, gap := range gaps {
		current = current.Add(gap)
		events = append(events, current)
	}

	work, breaks := classify.ClassifySpans(worklog.BuildSpans(events), linger)
	return workday.Summarize(timeutil.DateOf(events[0]), work, breaks, linger, 8*time.Hour)
}
