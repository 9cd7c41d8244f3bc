// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message   string
	confirmed bool
	quit      bool
	done      bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
	case key.Matches(keyMsg, keys.yes):
		m.confirmed = true
	case key.Matches(keyMsg, keys.no):
		m.confirmed = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	content := titleStyle.Render(m.message) + "\n\n"
	content += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}

// Confirm asks a yes/no question on the terminal. It returns [ErrUserQuit]
// when the prompt is interrupted with ctrl+c.
func Confirm(message string, opts ...tea.ProgramOption) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(message), opts...).Run()
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quit {
		return false, ErrUserQuit
	}
	return result.confirmed, nil
}
