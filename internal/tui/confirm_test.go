// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name          string
		msg           tea.KeyMsg
		wantConfirmed bool
		wantQuit      bool
	}{
		{name: "yes", msg: runes("y"), wantConfirmed: true},
		{name: "upper yes", msg: runes("Y"), wantConfirmed: true},
		{name: "no", msg: runes("n")},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := newConfirmModel("Remove item-1?").Update(tt.msg)
			m := model.(confirmModel)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.done)
			assert.Equal(t, tt.wantConfirmed, m.confirmed)
			assert.Equal(t, tt.wantQuit, m.quit)
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	model, cmd := newConfirmModel("Remove item-1?").Update(runes("x"))
	m := model.(confirmModel)

	assert.Nil(t, cmd)
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "Remove item-1?")
}

func TestConfirmModel_ViewEmptyWhenDone(t *testing.T) {
	model, _ := newConfirmModel("Remove item-1?").Update(runes("y"))
	assert.Empty(t, model.View())
}
