package output

import (
	"encoding/json"
	"fmt"
	"io"

	"workday/workday"
)

type JSONWriter struct{}

func (w *JSONWriter) Write(out io.Writer, summary workday.Summary) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewReport(summary)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
