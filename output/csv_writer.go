package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"workday/workday"
)

var summaryHeaders = []string{"Date", "StartTime", "EndTime", "WorkedMinutes", "RemainingMinutes", "WorkSpans", "BreakCount", "BreakMinutes"}

type CSVWriter struct{}

func (w *CSVWriter) Write(out io.Writer, summary workday.Summary) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(summaryHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.Write(summaryRow(summary)); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func summaryRow(summary workday.Summary) []string {
	return []string{
		summary.Date.String(),
		clockOrEmpty(summary.Start),
		clockOrEmpty(summary.End),
		strconv.FormatInt(wholeMinutes(summary.Worked), 10),
		strconv.FormatInt(wholeMinutes(summary.Remaining), 10),
		strconv.Itoa(len(summary.WorkSpans)),
		strconv.Itoa(len(summary.Breaks)),
		strconv.FormatInt(wholeMinutes(summary.BreakTime()), 10),
	}
}
