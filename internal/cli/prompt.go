package cli

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt styles
var (
	promptQuestionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	promptHintStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ConfirmModel - Y/N question
// =============================================================================

// ConfirmModel is the bubbletea model for a yes/no question.
// Anything other than an explicit yes counts as no.
type ConfirmModel struct {
	Question string
	Answered bool
	Yes      bool
}

// NewConfirmModel creates a confirm model for question.
func NewConfirmModel(question string) ConfirmModel {
	return ConfirmModel{Question: question}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.Answered, m.Yes = true, true
		return m, tea.Quit
	case "n", "enter", "q", "esc", "ctrl+c":
		m.Answered, m.Yes = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.Answered {
		answer := "no"
		if m.Yes {
			answer = "yes"
		}
		return promptQuestionStyle.Render(m.Question) + " " + StyleDim.Render(answer) + "\n"
	}
	return promptQuestionStyle.Render(m.Question) + " " + promptHintStyle.Render("[y/N]") + " "
}

// confirmFunc asks a yes/no question.
type confirmFunc func(ctx context.Context, question string) (bool, error)

// teaConfirm returns a confirmFunc that runs a ConfirmModel on in/w.
func teaConfirm(in io.Reader, w io.Writer) confirmFunc {
	return func(ctx context.Context, question string) (bool, error) {
		p := tea.NewProgram(NewConfirmModel(question),
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(w),
		)
		final, err := p.Run()
		if err != nil {
			return false, err
		}
		m, ok := final.(ConfirmModel)
		return ok && m.Yes, nil
	}
}
