package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TuboFmc/anvil/registry"
	"github.com/TuboFmc/anvil/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B3001B")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B3001B"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0E68C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	err      error
	filename string
	device   string
	entries  []registry.Entry
	visible  []int
	filter   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type loadedMsg struct {
	err     error
	device  string
	entries []registry.Entry
}

func newBrowseModel(filename string) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "name or type"
	ti.Prompt = "filter: "
	ti.Width = 40

	return &browseModel{
		filename: filename,
		filter:   ti,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadReport
}

func (m *browseModel) loadReport() tea.Msg {
	rep, err := report.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	entries, err := rep.Entries()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{device: rep.Device, entries: entries}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateFilter {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			switch m.state {
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case stateDetail:
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.device = msg.device
		m.entries = msg.entries
		m.applyFilter()
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, e := range m.entries {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(e.Type.String(), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.entries == nil {
		return "Loading report..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Marker Browser"))
	b.WriteString(" ")
	b.WriteString(m.device)
	b.WriteString(" · ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if m.state == stateDetail {
		m.viewDetail(&b)
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no objects match"))
		b.WriteString("\n")
	}
	for row, idx := range m.visible {
		e := m.entries[idx]
		line := fmt.Sprintf("%s  %s  %s",
			handleStyle.Render(fmt.Sprintf("%-14s", fmt.Sprintf("0x%x", uint64(e.Handle)))),
			typeStyle.Render(fmt.Sprintf("%-22s", e.Type.String())),
			e.Name)
		if row == m.selected && m.state == stateBrowse {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
	return b.String()
}

func (m *browseModel) viewDetail(b *strings.Builder) {
	e := m.entries[m.visible[m.selected]]

	fmt.Fprintf(b, "Handle: %s\n", handleStyle.Render(fmt.Sprintf("0x%x", uint64(e.Handle))))
	fmt.Fprintf(b, "Type:   %s\n", typeStyle.Render(e.Type.String()))
	fmt.Fprintf(b, "Name:   %s\n", e.Name)
	if len(e.Tag) > 0 {
		fmt.Fprintf(b, "Tag ID: %s\n\n", tagStyle.Render(fmt.Sprintf("%d", e.TagID)))
		b.WriteString(tagStyle.Render(hex.Dump(e.Tag)))
	} else {
		b.WriteString("Tag:    -\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter/esc back • q quit"))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowseModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
