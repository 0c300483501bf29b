package statusbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

// Model is a status bar model.
type Model struct {
	common common.Common
	key    string
	value  string
	info   string
	extra  string
}

// StatusBarMsg is a message that updates the status bar.
type StatusBarMsg struct {
	Key   string
	Value string
	Info  string
	Extra string
}

// New creates a new status bar component.
func New(c common.Common) *Model {
	return &Model{
		common: c,
	}
}

// SetSize implements common.Component.
func (s *Model) SetSize(width, height int) {
	s.common.SetSize(width, height)
}

// Init implements tea.Model.
func (s *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusBarMsg:
		s.key = msg.Key
		s.value = msg.Value
		s.info = msg.Info
		s.extra = msg.Extra
	}
	return s, nil
}

// View implements tea.Model.
func (s *Model) View() string {
	st := s.common.Styles
	w := lipgloss.Width
	key := st.StatusBarKey.Render(s.key)
	info := st.StatusBarInfo.Render(s.info)
	extra := st.StatusBarBranch.Render(s.extra)
	maxWidth := s.common.Width - w(key) - w(info) - w(extra)
	value := st.StatusBarValue.
		Width(maxWidth).
		Render(common.TruncateString(s.value,
			maxWidth-st.StatusBarValue.GetHorizontalFrameSize()))

	return st.StatusBar.Width(s.common.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			key,
			value,
			info,
			extra,
		),
	)
}
