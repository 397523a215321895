package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"workday/workday"
)

// TextWriter renders the human-readable report printed by the root command.
type TextWriter struct {
	Color bool
}

func (w *TextWriter) Write(out io.Writer, summary workday.Summary) error {
	heading := w.style(color.Bold)
	label := w.style(color.FgCyan)
	breakStyle := w.style(color.FgYellow)

	report := NewReport(summary)

	if len(report.Breaks) == 0 {
		if _, err := fmt.Fprintf(out, "%s None\n", heading.Sprintf("Breaks (%dm or longer):", report.LingerMinutes)); err != nil {
			return fmt.Errorf("write breaks: %w", err)
		}
	} else {
		if _, err := fmt.Fprintln(out, heading.Sprintf("Breaks (%dm or longer):", report.LingerMinutes)); err != nil {
			return fmt.Errorf("write breaks: %w", err)
		}
		for _, b := range report.Breaks {
			if _, err := fmt.Fprintf(out, "  - %s-%s %s\n", b.Start, b.End, breakStyle.Sprintf("%dm", b.Minutes)); err != nil {
				return fmt.Errorf("write break: %w", err)
			}
		}
	}

	lines := [][2]string{
		{"Start:", clockOrUnknown(summary.Start)},
		{"End:", clockOrUnknown(summary.End)},
		{"Worked:", report.Worked},
		{"Remaining:", report.Remaining},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(out, "%s %s\n", label.Sprint(line[0]), line[1]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}

func (w *TextWriter) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if w.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
