package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPrompt_DigitSelection(t *testing.T) {
	tests := []struct {
		digit string
		want  Choice
	}{
		{"1", ChoiceKill},
		{"2", ChoiceScan},
		{"3", ChoiceExit},
	}

	for _, tt := range tests {
		t.Run(tt.digit, func(t *testing.T) {
			m := newPromptModel(8080)
			updated, cmd := m.Update(key(tt.digit))

			result := updated.(promptModel)
			if !result.chosen {
				t.Fatal("digit did not finalize the choice")
			}
			if result.choice != tt.want {
				t.Errorf("choice = %v, want %v", result.choice, tt.want)
			}
			if cmd == nil {
				t.Error("expected quit command after selection")
			}
		})
	}
}

func TestPrompt_CursorNavigation(t *testing.T) {
	m := newPromptModel(8080)

	updated, _ := m.Update(key("down"))
	updated, _ = updated.(promptModel).Update(key("enter"))

	result := updated.(promptModel)
	if !result.chosen {
		t.Fatal("enter did not finalize the choice")
	}
	if result.choice != ChoiceScan {
		t.Errorf("choice = %v, want ChoiceScan after one down", result.choice)
	}
}

func TestPrompt_CursorBounds(t *testing.T) {
	m := newPromptModel(8080)

	// Up at the top stays at the top.
	updated, _ := m.Update(key("up"))
	if got := updated.(promptModel).list.Index(); got != 0 {
		t.Errorf("index = %d, want 0", got)
	}

	// Down past the end stays at the end.
	for i := 0; i < 5; i++ {
		updated, _ = updated.(promptModel).Update(key("down"))
	}
	if got := updated.(promptModel).list.Index(); got != len(conflictItems)-1 {
		t.Errorf("index = %d, want %d", got, len(conflictItems)-1)
	}
}

func TestPrompt_QuitKeysChooseExit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := newPromptModel(8080)
			updated, _ := m.Update(key(k))

			result := updated.(promptModel)
			if !result.chosen || result.choice != ChoiceExit {
				t.Errorf("choice = %v (chosen=%v), want ChoiceExit", result.choice, result.chosen)
			}
		})
	}
}

func TestPrompt_View(t *testing.T) {
	m := newPromptModel(9090)
	view := m.View()

	if !strings.Contains(view, "9090") {
		t.Error("view should name the conflicting port")
	}
	for _, label := range []string{"Kill existing", "alternative port", "Exit"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing option %q", label)
		}
	}

	// After a choice the view collapses.
	updated, _ := m.Update(key("1"))
	if updated.(promptModel).View() != "" {
		t.Error("view should be empty after selection")
	}
}
