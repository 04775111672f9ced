package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/fdtdscene/internal/app"
	"github.com/specialistvlad/fdtdscene/internal/document"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fdtdscene", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fdtdscene - Reads an FDTD scene description and builds its simulation objects.

Usage:
  fdtdscene [options] [DOCUMENT]

Arguments:
  DOCUMENT
    Path to the scene document. Defaults to `+app.DefaultDocumentPath+`.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "auto", "Document format. Options: 'auto', 'toml', 'hcl', 'yaml' or 'json'. 'auto' picks by file extension.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict-names", false, "Reject records whose name repeats an earlier record in the same catalog.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one document, got %d", flagSet.NArg())}
	}

	path := app.DefaultDocumentPath
	isDefault := true
	if flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
		isDefault = false
	}
	slog.Debug("Document path determined.", "path", path, "default", isDefault)

	config, err := app.NewConfig(app.Config{
		DocumentPath:    path,
		DefaultDocument: isDefault,
		Format:          document.Format(*formatFlag),
		LogFormat:       *logFormatFlag,
		LogLevel:        *logLevelFlag,
		StrictNames:     *strictFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
