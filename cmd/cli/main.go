package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/fdtdscene/internal/app"
	"github.com/specialistvlad/fdtdscene/internal/cli"
)

// main is the entrypoint for the fdtdscene application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Reports go to outW, logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	fdtdApp, err := app.NewApp(outW, errW, cfg, nil)
	if err == nil {
		_, err = fdtdApp.Run(context.Background())
	}
	if err != nil {
		return &cli.ExitError{
			Code:    1,
			Message: fmt.Sprintf("Error reading file: %s\n%v", cfg.DocumentPath, err),
		}
	}
	return nil
}
