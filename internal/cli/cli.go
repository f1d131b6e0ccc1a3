package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/orgchart/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `orgchart - replay reporting-line changes against an org chart.

Loads a seed hierarchy and an operation script (move, undo, redo) from HCL
or YAML files, replays the script, and prints the resulting hierarchy.

Arguments:
  PATH
    A .hcl, .yaml or .yml file, or a directory containing them. Several
    paths are merged in order; exactly one root employee must be defined.`

// flags holds raw flag values before validation.
type flags struct {
	outputFormat    string
	historyLimit    int
	logFormat       string
	logLevel        string
	healthcheckPort int
	serve           bool
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		f   flags
		cfg *app.Config
	)
	cmd := &cobra.Command{
		Use:           "orgchart [options] PATH...",
		Short:         "Replay reporting-line changes against an org chart.",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if len(paths) == 0 {
				slog.Debug("No configuration path provided, printing usage and exiting.")
				return cmd.Help()
			}
			var err error
			cfg, err = f.toConfig(cmd, paths)
			return err
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	fs := cmd.Flags()
	fs.StringVarP(&f.outputFormat, "output-format", "o", app.FormatHCL, "Format of the printed hierarchy. Options: 'hcl' or 'yaml'.")
	fs.IntVar(&f.historyLimit, "history-limit", 0, "Maximum number of undoable moves. Overrides the settings block; 0 is unlimited.")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.IntVar(&f.healthcheckPort, "healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	fs.BoolVar(&f.serve, "serve", false, "Keep the health check server running after the replay until interrupted.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if cfg == nil {
		// --help, or no paths.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func (f *flags) toConfig(cmd *cobra.Command, paths []string) (*app.Config, error) {
	logFormat := strings.ToLower(f.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(f.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		Paths:           paths,
		OutputFormat:    strings.ToLower(f.outputFormat),
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: f.healthcheckPort,
		Serve:           f.serve,
	}
	if cmd.Flags().Changed("history-limit") {
		limit := f.historyLimit
		cfg.HistoryLimit = &limit
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, nil
}
