package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"workday/output"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <history-file>",
	Short: "Write today's report to a CSV, Excel, JSON, YAML or text file",
	Long: `Reconstruct today's workday from the history file and write the report to a file.

Output format can be selected explicitly via --format or inferred from --output extension.
Report settings (linger, workday hours, end hour, timezone) are shared with the root command
and can also come from the config file and WORKDAY_* environment variables.`,
	Example: `
  # Export to Excel (summary sheet plus one row per break)
  workday export ~/.zsh_history --output ./today.xlsx

  # Export to CSV
  workday export ~/.zsh_history --output ./today.csv

  # Force JSON independent of extension
  workday export ~/.zsh_history --format json --output ./today.out
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = output.DetectFormat(exportOutput)
		}

		if err := exportReport(args[0], exportOutput, format, time.Now()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Export completed. Format: %s, File: %s\n", format, exportOutput)
		return nil
	},
}

func exportReport(historyPath, outputPath, format string, now time.Time) error {
	result, err := reconstruct(historyPath, *activeConfig, now)
	if err != nil {
		return err
	}

	writer, err := output.WriterForFormat(format, output.Options{})
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output %s: %w", outputPath, err)
	}
	if err := writer.Write(file, result.Summary); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", outputPath, err)
	}

	logger.Debug().Str("file", outputPath).Str("format", format).Msg("Report exported")
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: text|json|yaml|csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
