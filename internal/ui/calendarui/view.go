package calendarui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evgeniy-krivenko/blog-calendar/internal/calendar"
	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

var (
	border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))

	titleStyle  = lipgloss.NewStyle().Bold(true)
	blurStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	todayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	memoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

const memoMarker = "•"

func (m Model) View() string {
	parts := []string{
		border.Padding(0, 1).Render(m.renderHeader() + "\n\n" + m.renderGrid()),
		m.renderToday(),
		m.renderMemoList(),
	}

	if m.state.EditorOpen() {
		parts = append(parts, m.renderEditor())
	}

	if line := m.renderStatus(); line != "" {
		parts = append(parts, line)
	}

	parts = append(parts, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("%s %d", m.state.Month, m.state.Year))
	if m.state.Phase == calendar.PhaseLoading {
		title += " " + blurStyle.Render("loading...")
	}

	return title
}

func (m Model) renderGrid() string {
	var b strings.Builder

	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(blurStyle.Render(fmt.Sprintf("%-4s", wd)))
	}
	b.WriteString("\n")

	first := time.Date(m.state.Year, m.state.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", offset))

	days := daysIn(m.state.Year, m.state.Month)
	for day := 1; day <= days; day++ {
		b.WriteString(m.renderDay(day))

		if (offset+day)%7 == 0 && day != days {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderDay(day int) string {
	date := entity.FormatDate(time.Date(m.state.Year, m.state.Month, day, 0, 0, 0, 0, time.UTC))

	marker := " "
	if _, ok := m.state.MemoOf(date); ok {
		marker = memoStyle.Render(memoMarker)
	}

	num := fmt.Sprintf("%2d", day)
	switch {
	case day == m.cursor:
		num = cursorStyle.Render(num)
	case m.isToday(day):
		num = todayStyle.Render(num)
	}

	return num + marker + " "
}

func (m Model) isToday(day int) bool {
	return m.today.Year() == m.state.Year && m.today.Month() == m.state.Month && m.today.Day() == day
}

func (m Model) renderToday() string {
	return statusStyle.Render("Today: " + m.today.Format("Monday, 2006-01-02"))
}

func (m Model) renderMemoList() string {
	if len(m.state.Memos) == 0 {
		return blurStyle.Render("No memos this month.")
	}

	lines := make([]string, 0, len(m.state.Memos)+1)
	lines = append(lines, titleStyle.Render("Memos this month"))
	for _, memo := range m.state.Memos {
		text, _, _ := strings.Cut(memo.Text, "\n")
		lines = append(lines, fmt.Sprintf("%s  %s", memoStyle.Render(memo.Date), text))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderEditor() string {
	mode := "new memo"
	if m.state.Editor.EditMode() {
		mode = "edit memo"
	}

	header := titleStyle.Render(m.state.Editor.Date) + " " + blurStyle.Render(mode)

	var footer string
	switch m.state.Phase {
	case calendar.PhaseSaving:
		footer = blurStyle.Render("saving...")
	case calendar.PhaseConfirmDelete:
		footer = focusStyle.Render("Delete this memo? (y/n)")
	case calendar.PhaseDeleting:
		footer = blurStyle.Render("deleting...")
	}

	body := header + "\n" + m.editor.View()
	if footer != "" {
		body += "\n" + footer
	}

	return border.BorderForeground(lipgloss.Color("205")).Padding(0, 1).Render(body)
}

func (m Model) renderStatus() string {
	switch {
	case m.state.Err != "":
		return errStyle.Render(m.state.Err)
	case m.state.Notice != "":
		return statusStyle.Render(m.state.Notice)
	default:
		return ""
	}
}

func (m Model) renderHelp() string {
	style := lipgloss.NewStyle().Padding(0, 1)

	switch m.state.Phase {
	case calendar.PhaseEditing, calendar.PhaseSaving, calendar.PhaseDeleting:
		return style.Render(m.help.View(editKeyMap{KeyMap: m.keys}))
	case calendar.PhaseConfirmDelete:
		return style.Render(m.help.View(confirmKeyMap{KeyMap: m.keys}))
	default:
		return style.Render(m.help.View(m.keys))
	}
}
