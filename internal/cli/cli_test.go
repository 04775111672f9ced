package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/fdtdscene/internal/app"
	"github.com/specialistvlad/fdtdscene/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		exitCode   int
	}{
		{
			name: "defaults",
			args: nil,
			want: &app.Config{
				DocumentPath:    "config.toml",
				DefaultDocument: true,
				Format:          document.FormatAuto,
				LogFormat:       "text",
				LogLevel:        "info",
			},
		},
		{
			name: "all options",
			args: []string{"-format", "yaml", "-log-level", "DEBUG", "-log-format", "json", "-strict-names", "scene.txt"},
			want: &app.Config{
				DocumentPath: "scene.txt",
				Format:       document.FormatYAML,
				LogFormat:    "json",
				LogLevel:     "debug",
				StrictNames:  true,
			},
		},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "unknown flag", args: []string{"-nope"}, exitCode: 2},
		{name: "bad format", args: []string{"-format", "xml"}, exitCode: 2},
		{name: "bad log level", args: []string{"-log-level", "loud"}, exitCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml"}, exitCode: 2},
		{name: "two documents", args: []string{"a.toml", "b.toml"}, exitCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.exitCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.exitCode, exitErr.Code)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
