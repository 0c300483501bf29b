package statusbar

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"

	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

func TestStatusBarRendersMessage(t *testing.T) {
	is := is.New(t)
	c := common.NewCommon(context.Background(), nil, nil, 80, 24)
	s := New(c)
	s.SetSize(80, 1)

	m, _ := s.Update(StatusBarMsg{
		Key:   "lena",
		Value: "Рога и Копыта",
		Info:  "Online",
		Extra: "Администратор",
	})
	s = m.(*Model)

	view := s.View()
	is.True(strings.Contains(view, "lena"))
	is.True(strings.Contains(view, "Рога и Копыта"))
	is.True(strings.Contains(view, "Online"))
	is.True(strings.Contains(view, "Администратор"))
}

func TestStatusBarTruncatesLongValue(t *testing.T) {
	is := is.New(t)
	c := common.NewCommon(context.Background(), nil, nil, 40, 24)
	s := New(c)
	s.SetSize(40, 1)

	long := strings.Repeat("организация-", 20)
	m, _ := s.Update(StatusBarMsg{Key: "lena", Value: long})
	s = m.(*Model)

	for _, line := range strings.Split(s.View(), "\n") {
		is.True(lipgloss.Width(line) <= 40)
	}
}
