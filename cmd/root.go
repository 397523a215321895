/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"workday/config"
	"workday/output"
	"workday/workday"
)

var (
	version = "dev"

	cfgFile string
	verbose bool

	// Set by loadRuntime for commands that need a validated config.
	activeConfig *config.Config
	logger       = zerolog.Nop()
	logCloser    io.Closer
	configErr    error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "workday <history-file>",
	Short: "Summarize today's work activity from a zsh extended history file.",
	Long: `
**********************************************
*                 WORKDAY                    *
**********************************************

Reads a zsh history file written with EXTENDED_HISTORY (": <epoch>:<elapsed>;<command>")
and reconstructs today's work session from the command timestamps.

Consecutive commands form spans. A span shorter than the linger threshold counts as work,
anything longer is reported as a break. The report shows the breaks, the first and last
command of the working time, the worked time and what is left of the workday quota.

Day boundary: the history is scanned from the newest command backwards. Commands later
than the workday end hour at the head of the history are skipped, then commands are counted
while they fall on today's date. This assumes work never starts after the end hour; it is a
heuristic, not a calendar rule.

Lines without a timestamp record are ignored. Remaining time never goes below zero.
`,
	Example: `
  # Report today's work from the default zsh history
  workday ~/.zsh_history

  # Treat gaps of 40 minutes or more as breaks and aim for 7 hours
  workday ~/.zsh_history --linger-minutes 40 --workday-hours 7

  # Evaluate "today" and the end hour in UTC
  workday ~/.zsh_history --timezone UTC

  # Machine-readable output
  workday ~/.zsh_history --format json

  # Write the report to an Excel file
  workday export ~/.zsh_history --output ./today.xlsx
`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := activeConfig.Output.Format
		if output.IsBinary(format) {
			return fmt.Errorf("format %s cannot be printed to the terminal; use: workday export %s --output <file>", format, args[0])
		}

		useColor := resolveColor(activeConfig.Output.Color, isTerminal(os.Stdout), os.Getenv("NO_COLOR"))
		return runReport(cmd.OutOrStdout(), args[0], format, useColor, *activeConfig, time.Now())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(closeLogger)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.workday.yaml, then ./.workday.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details to stderr (forces log level debug)")

	rootCmd.PersistentFlags().IntP("linger-minutes", "l", 30, "Gap in minutes from which on a pause between two commands is a break")
	rootCmd.PersistentFlags().IntP("workday-hours", "w", 8, "Target hours of work per day")
	rootCmd.PersistentFlags().IntP("workday-end-hour", "W", 17, "Hour after which commands at the head of the history are not counted")
	rootCmd.PersistentFlags().String("timezone", "Local", "Zone for today's date, the end hour and printed times")
	rootCmd.Flags().StringP("format", "f", "text", "Output format: text|json|yaml|csv")
	rootCmd.Flags().String("color", "auto", "Colored text output: auto|always|never")

	bindFlag(config.KeyLingerMinutes, rootCmd.PersistentFlags().Lookup("linger-minutes"))
	bindFlag(config.KeyWorkdayHours, rootCmd.PersistentFlags().Lookup("workday-hours"))
	bindFlag(config.KeyWorkdayEndHour, rootCmd.PersistentFlags().Lookup("workday-end-hour"))
	bindFlag(config.KeyTimezone, rootCmd.PersistentFlags().Lookup("timezone"))
	bindFlag(config.KeyOutputFormat, rootCmd.Flags().Lookup("format"))
	bindFlag(config.KeyOutputColor, rootCmd.Flags().Lookup("color"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}
		return loadRuntime()
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func requiresConfig(cmd *cobra.Command) bool {
	return cmd != nil && (cmd == rootCmd || cmd.Name() == "export")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".workday" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".workday")
	}

	config.ConfigureEnv(viper.GetViper())

	// A missing config file is fine: defaults and flags cover everything.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

func loadRuntime() error {
	if configErr != nil {
		return fmt.Errorf("read config file: %w", configErr)
	}

	cfg, err := config.LoadAndValidate()
	if err != nil {
		return err
	}
	activeConfig = cfg

	logger, logCloser = setupLogger(cfg.Log, verbose, os.Stderr)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug().Str("config", used).Msg("Config file loaded")
	} else {
		logger.Debug().Msg("No config file found, using defaults")
	}
	return nil
}

func runReport(out io.Writer, historyPath, format string, useColor bool, cfg config.Config, now time.Time) error {
	result, err := reconstruct(historyPath, cfg, now)
	if err != nil {
		return err
	}

	writer, err := output.WriterForFormat(format, output.Options{Color: useColor})
	if err != nil {
		return err
	}
	return writer.Write(out, result.Summary)
}

func reconstruct(historyPath string, cfg config.Config, now time.Time) (*workday.Result, error) {
	loc, err := cfg.Report.Location()
	if err != nil {
		return nil, err
	}

	service := workday.NewService(workday.Options{
		Linger:   cfg.Report.Linger(),
		Quota:    cfg.Report.Quota(),
		EndHour:  cfg.Report.WorkdayEndHour,
		Location: loc,
	}, logger)

	return service.ReportFile(historyPath, now)
}
