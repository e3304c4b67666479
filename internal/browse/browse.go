// Package browse is an interactive terminal viewer for a dataset: step
// through indices, jump to an arbitrary one, and inspect each sample's
// question, answer, and metadata. Every view recomputes its sample through
// the ordinary dataset API, so what the browser shows is exactly what any
// other consumer would get.
package browse

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/taskgym/internal/dataset"
	"github.com/abhisek/taskgym/internal/ui/theme"
)

// Model is the root Bubble Tea model for the browser.
type Model struct {
	name  string
	ds    dataset.Dataset
	index int

	jump    textinput.Model
	jumping bool

	width  int
	height int
}

// New creates a browser over ds, starting at index 0.
func New(name string, ds dataset.Dataset) Model {
	ti := textinput.New()
	ti.Placeholder = "index"
	ti.CharLimit = 12
	return Model{name: name, ds: ds, jump: ti}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			switch msg.String() {
			case "enter":
				if i, err := strconv.Atoi(strings.TrimSpace(m.jump.Value())); err == nil {
					m.index = clamp(i, 0, m.ds.Size()-1)
				}
				m.jumping = false
				m.jump.SetValue("")
				return m, nil
			case "esc":
				m.jumping = false
				m.jump.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.jump, cmd = m.jump.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			m.index = clamp(m.index-1, 0, m.ds.Size()-1)
		case "right", "l":
			m.index = clamp(m.index+1, 0, m.ds.Size()-1)
		case "home":
			m.index = 0
		case "end":
			m.index = m.ds.Size() - 1
		case "g":
			m.jumping = true
			return m, m.jump.Focus()
		}
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	header := theme.Title.Render(fmt.Sprintf("%s — sample %d of %d", m.name, m.index, m.ds.Size()))

	var body string
	smp, err := m.ds.Get(m.index)
	if err != nil {
		body = lipgloss.NewStyle().Foreground(theme.Error).Render(err.Error())
	} else {
		body = renderSample(smp, m.width-6)
	}

	footer := theme.Hint.Render("←/→ step · g jump · home/end · q quit")
	if m.jumping {
		footer = theme.Label.Render("Jump to: ") + m.jump.View()
	}

	card := theme.Card.Width(min(m.width-2, 100)).Render(body)
	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, card, footer))
	return v
}

// Run starts the browser program and blocks until it exits.
func Run(name string, ds dataset.Dataset) error {
	p := tea.NewProgram(New(name, ds))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

// renderSample lays out one sample for display, metadata keys sorted.
func renderSample(smp dataset.Sample, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	b.WriteString(theme.Label.Render("Question"))
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(theme.Body).Render(smp.Question))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(theme.Answer.Render(smp.Answer))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Metadata"))

	keys := make([]string, 0, len(smp.Metadata))
	for k := range smp.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		val, err := json.Marshal(smp.Metadata[k])
		if err != nil {
			val = []byte(fmt.Sprintf("%v", smp.Metadata[k]))
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s: %s", k, val)))
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
