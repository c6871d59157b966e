package testutil

import (
	"os"
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (w *TestWorkspace) AssertFileExists(fullPath string) {
	w.t.Helper()
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s", fullPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *TestWorkspace) AssertFileNotExists(fullPath string) {
	w.t.Helper()
	if _, err := os.Stat(fullPath); err == nil {
		w.t.Errorf("expected file to not exist: %s", fullPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (w *TestWorkspace) AssertFileContains(fullPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(fullPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", fullPath, substr, content)
	}
}

// AssertDirNotExists fails the test if the directory still exists.
func (w *TestWorkspace) AssertDirNotExists(fullPath string) {
	w.t.Helper()
	if _, err := os.Stat(fullPath); err == nil {
		w.t.Errorf("expected directory to not exist: %s", fullPath)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertResultCount checks that a list in the result data has the expected length.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, expected int) {
	t.Helper()
	results := r.DataList(key)
	if len(results) != expected {
		t.Errorf("expected %d %s, got %d\nRaw: %s", expected, key, len(results), r.RawJSON)
	}
}
