// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is the Bubble Tea model for the guild-id prompt shown when the
// id was not provided through configuration. Enter submits a non-empty
// numeric value; ctrl+c and esc abandon the run.
type promptModel struct {
	input    textinput.Model
	validate func(string) error

	value  string
	errMsg string
	quit   bool
}

func newPromptModel(validate func(string) error) *promptModel {
	input := textinput.New()
	input.Placeholder = "guild id"
	input.CharLimit = 32
	input.Width = 40
	input.Focus()

	return &promptModel{input: input, validate: validate}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - ctrl+c, esc — abandon the prompt.
//   - enter       — validate and submit.
//
// All other key events are forwarded to the input widget.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if err := m.validate(value); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *promptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Masukkan ID Server"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("ID Server"))
	b.WriteString(" │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: подтвердить │ esc: выход"))
	b.WriteString("\n")
	return b.String()
}

// PromptGuildID asks the operator for the guild id to monitor. validate is
// applied on submission; a failing value keeps the prompt open with the error
// shown inline. Returns [ErrUserQuit] when the operator aborts.
func (t *TUI) PromptGuildID(ctx context.Context, validate func(string) error) (string, error) {
	model := newPromptModel(validate)

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(t.out))
	final, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(*promptModel)
	if !ok || result.quit {
		return "", ErrUserQuit
	}
	return result.value, nil
}
