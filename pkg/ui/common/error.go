package common

import tea "github.com/charmbracelet/bubbletea"

// ErrorMsg is a Bubble Tea message that represents an error.
type ErrorMsg error

// ErrorCmd returns an ErrorMsg from error.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg(err)
	}
}

// NoticeMsg is a one-line message rendered above the active page, for
// example "Вы успешно вышли из системы" after logout.
type NoticeMsg string

// NoticeCmd returns a NoticeMsg from text.
func NoticeCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg(text)
	}
}
