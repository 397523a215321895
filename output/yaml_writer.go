package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"workday/workday"
)

type YAMLWriter struct{}

func (w *YAMLWriter) Write(out io.Writer, summary workday.Summary) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewReport(summary)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml report: %w", err)
	}
	return nil
}
