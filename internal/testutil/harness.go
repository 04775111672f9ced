package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/fdtdscene/internal/app"
	"github.com/specialistvlad/fdtdscene/internal/document"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Result    *app.Result
	Err       error
}

// Options tweak the configuration used by RunIntegrationTest.
type Options struct {
	Format      document.Format
	StrictNames bool
}

// RunIntegrationTest writes a single document named name into a temporary
// directory and runs the full application against it using a default
// background context.
func RunIntegrationTest(t *testing.T, name, content string, opts Options) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, name, content, opts)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, name, content string, opts Options) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))

	cfg, err := app.NewConfig(app.Config{
		DocumentPath: filePath,
		Format:       opts.Format,
		LogLevel:     "debug",
		LogFormat:    "text",
		StrictNames:  opts.StrictNames,
	})
	require.NoError(t, err)

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	testApp, err := app.NewApp(outBuffer, logBuffer, cfg, nil)
	require.NoError(t, err)

	result, runErr := testApp.Run(ctx)

	if os.Getenv("FDTD_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Result:    result,
		Err:       runErr,
	}
}
