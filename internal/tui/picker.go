// Package tui provides the interactive host picker for hostpick.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostpick/hostpick/internal/hosts"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Host   *hosts.Host
}

// PickerOptions configures the picker's display behavior.
type PickerOptions struct {
	InitialFilter    string
	ShowProxyCommand bool
}

// hostItem implements list.Item for host display
type hostItem struct {
	host      hosts.Host
	showProxy bool
}

func (i hostItem) Title() string {
	if i.host.Aliases != "" {
		return fmt.Sprintf("%s (%s)", i.host.Name, i.host.Aliases)
	}
	return i.host.Name
}

func (i hostItem) Description() string {
	target := i.host.Destination
	if i.host.User != "" {
		target = i.host.User + "@" + target
	}
	if i.host.Port != "" {
		target += ":" + i.host.Port
	}

	if i.showProxy && i.host.ProxyCommand != "" {
		return fmt.Sprintf("%s | proxy: %s", target, i.host.ProxyCommand)
	}
	return target
}

func (i hostItem) FilterValue() string {
	if i.host.Aliases != "" {
		return i.host.Name + " " + i.host.Aliases
	}
	return i.host.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the host picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new host picker
func NewPicker(hostList []hosts.Host, opts PickerOptions) Model {
	items := make([]list.Item, len(hostList))
	for i, h := range hostList {
		items[i] = hostItem{host: h, showProxy: opts.ShowProxyCommand}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "hostpick - Select Host"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	if opts.InitialFilter != "" {
		l.SetFilterText(opts.InitialFilter)
	}

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				host := item.host
				m.result = PickerResult{
					Action: ActionConnect,
					Host:   &host,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc", "ctrl+c":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Connect  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive host picker
func RunPicker(hostList []hosts.Host, opts PickerOptions) (PickerResult, error) {
	if len(hostList) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(hostList, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
