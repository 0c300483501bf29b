package header

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

// Header is the top bar showing the organization name and current user.
type Header struct {
	common common.Common
	org    string
	user   string
}

// New creates a new header.
func New(c common.Common, org string) *Header {
	return &Header{
		common: c,
		org:    org,
	}
}

// SetOrg sets the organization name.
func (h *Header) SetOrg(org string) {
	h.org = org
}

// SetUser sets the current user line.
func (h *Header) SetUser(user string) {
	h.user = user
}

// SetSize implements common.Component.
func (h *Header) SetSize(width, height int) {
	h.common.SetSize(width, height)
}

// Init implements tea.Model.
func (h *Header) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

// View implements tea.Model.
func (h *Header) View() string {
	st := h.common.Styles
	org := st.HeaderOrg.Render(h.org)
	user := st.HeaderUser.
		Width(h.common.Width - lipgloss.Width(org)).
		Render(h.user)
	return st.Header.Width(h.common.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, org, user),
	)
}
