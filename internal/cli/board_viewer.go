package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epicboard/internal/cli/formatter"
)

// boardModel is a scrollable full-screen view over a rendered board.
type boardModel struct {
	title    string
	content  string
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newBoardModel(title, content string) boardModel {
	return boardModel{title: title, content: content}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(m.headerView())-lipgloss.Height(m.footerView()), 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.KeyMap = boardViewportKeyMap()
			m.vp.MouseWheelEnabled = true
			m.vp.MouseWheelDelta = 3
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.headerView() + "\n" + m.vp.View() + "\n" + m.footerView()
}

func (m boardModel) headerView() string {
	return formatter.StyleHeader.Render(m.title)
}

func (m boardModel) footerView() string {
	pct := 100
	if m.ready {
		pct = int(m.vp.ScrollPercent() * 100)
	}
	return formatter.Dim(fmt.Sprintf("↑/↓ scroll · q quit  %d%%", pct))
}

// boardViewportKeyMap returns scroll bindings for the board viewer. Letter
// keys other than j/k stay free so q can quit.
func boardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
