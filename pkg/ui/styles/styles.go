package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

// XXX: For now, this is in its own package so that it can be shared between
// different packages without incurring an illegal import cycle.

// Styles defines styles for the UI.
type Styles struct {
	ActiveBorderColor   lipgloss.Color
	InactiveBorderColor lipgloss.Color

	App        lipgloss.Style
	Header     lipgloss.Style
	HeaderOrg  lipgloss.Style
	HeaderUser lipgloss.Style

	TopLevelNormalTab lipgloss.Style
	TopLevelActiveTab lipgloss.Style
	TabInactive       lipgloss.Style
	TabActive         lipgloss.Style
	TabSeparator      lipgloss.Style

	Form struct {
		Label      lipgloss.Style
		LabelFocus lipgloss.Style
		Value      lipgloss.Style
		Hint       lipgloss.Style
		Error      lipgloss.Style
	}

	Notice  lipgloss.Style
	Success lipgloss.Style

	List struct {
		Normal struct {
			Base  lipgloss.Style
			Title lipgloss.Style
			Desc  lipgloss.Style
		}
		Active struct {
			Base  lipgloss.Style
			Title lipgloss.Style
			Desc  lipgloss.Style
		}
		NoItems lipgloss.Style
	}

	StatusOnline   lipgloss.Style
	StatusOffline  lipgloss.Style
	StatusLunch    lipgloss.Style
	StatusMeeting  lipgloss.Style
	StatusVacation lipgloss.Style

	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	AdminBadge lipgloss.Style

	StatusBar       lipgloss.Style
	StatusBarKey    lipgloss.Style
	StatusBarValue  lipgloss.Style
	StatusBarInfo   lipgloss.Style
	StatusBarBranch lipgloss.Style

	Footer      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpValue   lipgloss.Style
	HelpDivider lipgloss.Style

	Error      lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorBody  lipgloss.Style

	Spinner lipgloss.Style
}

// DefaultStyles returns default styles for the UI.
func DefaultStyles() *Styles {
	s := new(Styles)

	s.ActiveBorderColor = lipgloss.Color("62")
	s.InactiveBorderColor = lipgloss.Color("241")

	s.App = lipgloss.NewStyle().
		Margin(1, 2)

	s.Header = lipgloss.NewStyle().
		Height(1).
		Bold(true)

	s.HeaderOrg = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	s.HeaderUser = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Align(lipgloss.Right)

	s.TopLevelNormalTab = lipgloss.NewStyle().
		MarginRight(2)

	s.TopLevelActiveTab = s.TopLevelNormalTab.Copy().
		Foreground(lipgloss.Color("36"))

	s.TabInactive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.TabActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("36")).
		Underline(true)

	s.TabSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		SetString(" │ ")

	s.Form.Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.Form.LabelFocus = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	s.Form.Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	s.Form.Hint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.Form.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("204"))

	s.Notice = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		MarginBottom(1)

	s.Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		MarginBottom(1)

	s.List.Normal.Base = lipgloss.NewStyle().
		PaddingLeft(2)

	s.List.Normal.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	s.List.Normal.Desc = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.List.Active.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.Border{Left: "┃"}).
		BorderForeground(lipgloss.Color("36")).
		BorderLeft(true)

	s.List.Active.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	s.List.Active.Desc = lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))

	s.List.NoItems = lipgloss.NewStyle().
		MarginLeft(2).
		Foreground(lipgloss.Color("#626262"))

	s.StatusOnline = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	s.StatusOffline = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.StatusLunch = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	s.StatusMeeting = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	s.StatusVacation = lipgloss.NewStyle().
		Foreground(lipgloss.Color("135"))

	s.PriorityLow = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	s.PriorityMedium = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	s.PriorityHigh = lipgloss.NewStyle().
		Foreground(lipgloss.Color("204")).
		Bold(true)

	s.AdminBadge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("168"))

	s.StatusBar = lipgloss.NewStyle().
		Height(1)

	s.StatusBarKey = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("206")).
		Foreground(lipgloss.Color("228"))

	s.StatusBarValue = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("243"))

	s.StatusBarInfo = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("212")).
		Foreground(lipgloss.Color("230"))

	s.StatusBarBranch = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230"))

	s.Footer = lipgloss.NewStyle().
		MarginTop(1).
		Padding(0, 1).
		Height(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.HelpValue = lipgloss.NewStyle().
		Foreground(lipgloss.Color("239"))

	s.HelpDivider = lipgloss.NewStyle().
		Foreground(lipgloss.Color("237")).
		SetString(" • ")

	s.Error = lipgloss.NewStyle().
		MarginTop(2)

	s.ErrorTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("204")).
		Bold(true).
		Padding(0, 1)

	s.ErrorBody = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2)

	s.Spinner = lipgloss.NewStyle().
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("205"))

	return s
}

// StatusStyle returns the style for a user status.
func (s *Styles) StatusStyle(st proto.Status) lipgloss.Style {
	switch st {
	case proto.StatusOnline:
		return s.StatusOnline
	case proto.StatusLunch:
		return s.StatusLunch
	case proto.StatusMeeting:
		return s.StatusMeeting
	case proto.StatusVacation:
		return s.StatusVacation
	default:
		return s.StatusOffline
	}
}

// PriorityStyle returns the style for a task priority.
func (s *Styles) PriorityStyle(p proto.Priority) lipgloss.Style {
	switch p {
	case proto.PriorityHigh:
		return s.PriorityHigh
	case proto.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}
