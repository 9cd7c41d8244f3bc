// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/boasync/boa-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pickerWidth  = 72
	pickerHeight = 16
)

// pickerItem adapts a stored item to the list component.
type pickerItem struct {
	item models.Item
}

func (p pickerItem) Title() string {
	name := p.item.InstitutionName
	if name == "" {
		name = "unknown institution"
	}
	return fmt.Sprintf("%s (%s)", name, p.item.ItemID)
}

func (p pickerItem) Description() string {
	desc := "status: " + string(p.item.Status)
	if p.item.LastSyncAt != nil {
		desc += "  last sync: " + p.item.LastSyncAt.Local().Format("2006-01-02 15:04")
	}
	return desc
}

func (p pickerItem) FilterValue() string {
	return p.item.InstitutionName + " " + p.item.ItemID
}

type pickerModel struct {
	list   list.Model
	chosen string
	quit   bool
}

func newPickerModel(title string, items []models.Item) pickerModel {
	entries := make([]list.Item, 0, len(items))
	for _, it := range items {
		entries = append(entries, pickerItem{item: it})
	}

	l := list.New(entries, list.NewDefaultDelegate(), pickerWidth, pickerHeight)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quit = true
			return m, tea.Quit
		}
		if m.list.FilterState() != list.Filtering && key.Matches(msg, keys.enter) {
			if selected, ok := m.list.SelectedItem().(pickerItem); ok {
				m.chosen = selected.item.ItemID
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.chosen != "" || m.quit {
		return ""
	}
	return appStyle.Render(m.list.View())
}

// PickItem lets the user choose one of items and returns its id.
func PickItem(title string, items []models.Item, opts ...tea.ProgramOption) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	final, err := tea.NewProgram(newPickerModel(title, items), opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(pickerModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit || result.chosen == "" {
		return "", ErrUserQuit
	}
	return result.chosen, nil
}
