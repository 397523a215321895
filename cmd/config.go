package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"workday/config"
)

const defaultConfigName = ".workday.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage workday configuration file values.",
	Long: `Create, edit, display, and delete the workday configuration file.

The configuration stores defaults for the report flags and the diagnostic log:
- report.linger_minutes / report.workday_hours / report.workday_end_hour / report.timezone
- output.format / output.color
- log.level / log.format / log.file (+ rotation limits)

Every key can be overridden with an environment variable, e.g. WORKDAY_REPORT_WORKDAY_HOURS=6.
Command-line flags override both.`,
	Example: `
  # Create default config in $HOME/.workday.yaml
  workday config create

  # Show effective config and source file
  workday config show

  # Open active config in editor (creates example if missing)
  workday config edit

  # Delete active config file
  workday config delete
`,
}

// resolveConfigPath picks the file config commands operate on: the explicit
// flag, then the file viper loaded, then $HOME/.workday.yaml.
func resolveConfigPath(configFileFlag, configFileUsed string) (string, error) {
	if strings.TrimSpace(configFileFlag) != "" {
		return configFileFlag, nil
	}
	if strings.TrimSpace(configFileUsed) != "" {
		return configFileUsed, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName), nil
}

// writeConfigTemplate writes the example config to path. An existing file is
// kept unless overwrite is set; the result reports whether a file was written.
func writeConfigTemplate(path string, overwrite bool) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil && !overwrite:
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("writing example config failed: %w", err)
	}

	return true, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
