package components

import (
	"strings"
	"testing"
)

func TestConfirmDialog(t *testing.T) {
	dialog := NewConfirmDialog("Exit App", "Are you sure you want to exit?")

	if dialog.Visible {
		t.Error("Expected dialog to start hidden")
	}

	dialog.Show()
	if !dialog.Visible {
		t.Error("Expected dialog to be visible after Show")
	}
	if dialog.Confirmed() {
		t.Error("Expected No to be focused when shown")
	}

	dialog.Toggle()
	if !dialog.Confirmed() {
		t.Error("Expected Yes to be focused after Toggle")
	}

	dialog.Hide()
	dialog.Show()
	if dialog.Confirmed() {
		t.Error("Expected Show to reset focus to No")
	}
}

func TestConfirmDialogView(t *testing.T) {
	dialog := NewConfirmDialog("Exit App", "Are you sure you want to exit?")
	dialog.Show()

	view := dialog.View()
	for _, want := range []string{"Exit App", "Are you sure you want to exit?", "Yes", "No"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}
