package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"workday/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration values.",
	Long: `Display the effective configuration (defaults, config file, environment and flags merged)
and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  workday config show

  # Show what an environment override resolves to
  WORKDAY_REPORT_LINGER_MINUTES=45 workday config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return fmt.Errorf("read config file: %w", configErr)
		}
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return showConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), cfg)
	},
}

func showConfig(out io.Writer, configPath string, cfg *config.Config) error {
	if configPath == "" {
		fmt.Fprintln(out, "Config file: none (defaults, environment and flags only)")
	} else {
		fmt.Fprintln(out, "Config file loaded from:", configPath)
	}

	settings := map[string]any{
		"report": map[string]any{
			"linger_minutes":   cfg.Report.LingerMinutes,
			"workday_hours":    cfg.Report.WorkdayHours,
			"workday_end_hour": cfg.Report.WorkdayEndHour,
			"timezone":         cfg.Report.Timezone,
		},
		"output": map[string]any{
			"format": cfg.Output.Format,
			"color":  cfg.Output.Color,
		},
		"log": map[string]any{
			"level":        cfg.Log.Level,
			"format":       cfg.Log.Format,
			"file":         cfg.Log.File,
			"max_size_mb":  cfg.Log.MaxSizeMB,
			"max_backups":  cfg.Log.MaxBackups,
			"max_age_days": cfg.Log.MaxAgeDays,
		},
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	fmt.Fprintln(out, "Configuration:")
	_, err = out.Write(content)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
