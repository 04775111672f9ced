package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/fdtdscene/internal/document"
	"github.com/specialistvlad/fdtdscene/internal/fsutil"
	"github.com/specialistvlad/fdtdscene/internal/scene"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	docPath string
	loader  document.Loader
	builder *scene.Builder
}

// NewApp is the constructor for the main application. Reports are written to
// outW and logs to logW. A document path naming a directory is resolved to
// the single document inside it. A nil loader selects one from the
// configured format and the resolved path.
func NewApp(outW, logW io.Writer, cfg *Config, loader document.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	docPath, err := fsutil.ResolveFile(cfg.DocumentPath, document.Extensions()...)
	if err != nil {
		return nil, err
	}
	if docPath != cfg.DocumentPath {
		logger.Info("Document found in directory.", "dir", cfg.DocumentPath, "path", docPath)
	}

	if loader == nil {
		loader, err = document.NewLoader(cfg.Format, docPath)
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("Document loader selected.", "format", cfg.Format, "loader", loaderName(loader))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		docPath: docPath,
		loader:  loader,
		builder: scene.NewBuilder(),
	}, nil
}

func loaderName(l document.Loader) string {
	switch l.(type) {
	case *document.TOMLLoader:
		return "toml"
	case *document.HCLLoader:
		return "hcl"
	case *document.YAMLLoader:
		return "yaml"
	case *document.JSONLoader:
		return "json"
	default:
		return "custom"
	}
}
