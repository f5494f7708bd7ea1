package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunClosesLogAfterFailedCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	logPath := filepath.Join(t.TempDir(), "thrones.log")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("THRONES_API_TOKEN", "token")
	t.Setenv("THRONES_API_BASE_URL", srv.URL)
	t.Setenv("THRONES_LOG_FILE_ENABLED", "true")
	t.Setenv("THRONES_LOG_FILE_PATH", logPath)

	err := run(context.Background(), []string{"search", "snow"})
	if !errors.Is(err, errLoadFailed) {
		t.Fatalf("Expected errLoadFailed, got %v", err)
	}

	if current.logCloser != nil {
		t.Error("Expected the log file to be closed after a failed command")
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "failed to load characters") {
		t.Errorf("Expected the failure to be logged, got %q", content)
	}
}
