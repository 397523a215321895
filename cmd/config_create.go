package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateForce bool

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Create a new configuration file from the same example template used by "config edit".

An existing file is left untouched unless --force is given.`,
	Example: `
  # Create default config at $HOME/.workday.yaml
  workday config create

  # Reset a custom config file to the template
  workday --configFile ./workday.yaml config create --force
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createConfig(cmd.OutOrStdout(), cfgFile, viper.ConfigFileUsed(), configCreateForce)
	},
}

func createConfig(out io.Writer, configFileFlag, configFileUsed string, force bool) error {
	configPath, err := resolveConfigPath(configFileFlag, configFileUsed)
	if err != nil {
		return err
	}

	written, err := writeConfigTemplate(configPath, force)
	if err != nil {
		return err
	}

	if written {
		fmt.Fprintf(out, "Config file written to: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(out, "Config file already exists at: %s (use --force to overwrite)\n", configPath)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)

	configCreateCmd.Flags().BoolVar(&configCreateForce, "force", false, "Overwrite an existing config file with the template")
}
