package cmd

import (
	"errors"
	"strings"

	"github.com/kerbaras/thrones/pkg/services"
)

var errLoadFailed = errors.New("unable to load data, check your internet connection")

// checkResult turns a failed fetch into the generic load error.
// The underlying cause has already been logged by the controller.
func checkResult(result services.FetchResult) error {
	if result.Failed() {
		return errLoadFailed
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
