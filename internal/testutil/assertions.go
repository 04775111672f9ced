package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertRecordSkipped checks the log output within a HarnessResult to confirm
// that the record at the given document path was dropped with a warning.
func AssertRecordSkipped(t *testing.T, result *HarnessResult, recordPath string) {
	t.Helper()

	expected := fmt.Sprintf("record=%s", recordPath)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "level=WARN") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "record was not skipped",
		"expected a WARN log line for record %s in:\n%s", recordPath, result.LogOutput)
}

// AssertObjectOrder checks that the built objects carry the given names in
// order.
func AssertObjectOrder(t *testing.T, result *HarnessResult, names ...string) {
	t.Helper()

	require.NoError(t, result.Err)
	require.NotNil(t, result.Result)

	got := make([]string, 0, len(result.Result.Objects))
	for _, obj := range result.Result.Objects {
		got = append(got, obj.Name)
	}
	require.Equal(t, names, got)
}
