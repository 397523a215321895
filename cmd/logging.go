package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"workday/config"
)

// setupLogger builds the diagnostic logger. Logs never go to stdout, which
// carries the report. The returned closer is nil unless a log file is open.
func setupLogger(cfg config.LogConfig, verbose bool, stderr io.Writer) (zerolog.Logger, io.Closer) {
	level := zerolog.WarnLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	out := stderr
	var closer io.Closer
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out = rotator
		closer = rotator
	}

	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.File != ""}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer
}

func closeLogger() {
	if logCloser == nil {
		return
	}
	_ = logCloser.Close()
	logCloser = nil
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveColor decides whether the text report is styled. "auto" colors only
// a terminal and honors NO_COLOR.
func resolveColor(mode string, terminal bool, noColorEnv string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal && noColorEnv == ""
	}
}
