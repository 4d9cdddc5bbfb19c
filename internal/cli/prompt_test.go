package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModelUpdate(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		answered bool
		yes      bool
	}{
		{"lower y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true, true},
		{"upper Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true, true},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, true, false},
		{"enter defaults to no", tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true, false},
		{"other key ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := NewConfirmModel("Create?").Update(tt.key)
			m := model.(ConfirmModel)
			if m.Answered != tt.answered || m.Yes != tt.yes {
				t.Errorf("Update(%q) = answered %v yes %v, want %v %v", tt.key.String(), m.Answered, m.Yes, tt.answered, tt.yes)
			}
			if tt.answered && cmd == nil {
				t.Error("answered model should quit")
			}
			if !tt.answered && cmd != nil {
				t.Error("unanswered model should keep running")
			}
		})
	}
}

func TestConfirmModelIgnoresNonKeys(t *testing.T) {
	model, cmd := NewConfirmModel("Create?").Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m := model.(ConfirmModel); m.Answered {
		t.Error("window resize answered the question")
	}
	if cmd != nil {
		t.Error("window resize returned a command")
	}
}

func TestConfirmModelView(t *testing.T) {
	m := NewConfirmModel("Create out?")
	if v := m.View(); !strings.Contains(v, "Create out?") || !strings.Contains(v, "[y/N]") {
		t.Errorf("View() = %q, want question and hint", v)
	}

	m.Answered, m.Yes = true, true
	if v := m.View(); !strings.Contains(v, "yes") {
		t.Errorf("answered View() = %q, want yes", v)
	}
}
