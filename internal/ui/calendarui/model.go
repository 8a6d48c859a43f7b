// Package calendarui is the terminal calendar: a month grid with per-day
// memos, driven by the calendar state machine.
package calendarui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evgeniy-krivenko/blog-calendar/internal/calendar"
	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

const requestTimeout = 10 * time.Second

type memoAPI interface {
	SaveMemo(ctx context.Context, userID, date, text string) (v1.Memo, error)
	FetchMemos(ctx context.Context, userID string, year, month int) ([]v1.Memo, error)
	DeleteMemo(ctx context.Context, id int64) error
}

type Model struct {
	ctx context.Context
	api memoAPI

	state   calendar.State
	initial []calendar.Effect

	cursor int
	today  time.Time

	editor   textarea.Model
	help     help.Model
	keys     KeyMap
	showHelp bool

	width  int
	height int
}

// NewModel opens the calendar on the month of now with the cursor on today.
func NewModel(ctx context.Context, api memoAPI, userID string, now time.Time) Model {
	state, effects := calendar.New(userID, now.Year(), now.Month())

	ta := textarea.New()
	ta.Placeholder = "Write a memo..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(5)
	ta.Cursor.SetMode(cursor.CursorStatic)

	h := help.New()
	h.ShowAll = false

	return Model{
		ctx:     ctx,
		api:     api,
		state:   state,
		initial: effects,
		cursor:  now.Day(),
		today:   now,
		editor:  ta,
		help:    h,
		keys:    DefaultKeyMap(),
	}
}

// State is the current calendar state.
func (m Model) State() calendar.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.run(m.initial)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(max(20, min(60, msg.Width-4)))
		return m, nil

	case calendar.Event:
		return m.apply(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.state.Phase {
		case calendar.PhaseEditing:
			return m.updateEditor(msg)
		case calendar.PhaseConfirmDelete:
			return m.updateConfirm(msg)
		case calendar.PhaseSaving, calendar.PhaseDeleting:
			return m, nil
		default:
			return m.updateMonth(msg)
		}
	}

	return m, nil
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(7)

	case key.Matches(msg, m.keys.PrevMonth):
		return m.showMonth(m.state.Year, m.state.Month-1, m.cursor)
	case key.Matches(msg, m.keys.NextMonth):
		return m.showMonth(m.state.Year, m.state.Month+1, m.cursor)

	case key.Matches(msg, m.keys.Today):
		if m.today.Year() == m.state.Year && m.today.Month() == m.state.Month {
			m.cursor = m.today.Day()
			return m, nil
		}
		return m.showMonth(m.today.Year(), m.today.Month(), m.today.Day())

	case key.Matches(msg, m.keys.Open):
		return m.apply(calendar.SelectDate{Date: m.cursorDate()})
	}

	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.apply(calendar.Cancel{})
	case key.Matches(msg, m.keys.Save):
		return m.apply(calendar.Save{})
	case key.Matches(msg, m.keys.Delete):
		return m.apply(calendar.RequestDelete{})
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.state, _ = m.state.Apply(calendar.EditText{Text: m.editor.Value()})

	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.apply(calendar.ConfirmDelete{})
	case key.Matches(msg, m.keys.Deny):
		return m.apply(calendar.Cancel{})
	}

	return m, nil
}

func (m Model) apply(ev calendar.Event) (Model, tea.Cmd) {
	prev := m.state
	next, effects := prev.Apply(ev)
	m.state = next

	var focus tea.Cmd
	switch {
	case !prev.EditorOpen() && next.EditorOpen():
		m.editor.SetValue(next.Editor.Draft)
		m.editor.CursorEnd()
		focus = m.editor.Focus()
	case prev.EditorOpen() && !next.EditorOpen():
		m.editor.Blur()
		m.editor.Reset()
	}

	if next.Year != prev.Year || next.Month != prev.Month {
		m.cursor = min(m.cursor, daysIn(next.Year, next.Month))
	}

	return m, tea.Batch(focus, m.run(effects))
}

// moveCursor moves by delta days and follows the cursor into adjacent months.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	d := time.Date(m.state.Year, m.state.Month, m.cursor+delta, 0, 0, 0, 0, time.UTC)
	if d.Year() == m.state.Year && d.Month() == m.state.Month {
		m.cursor = d.Day()
		return m, nil
	}

	return m.showMonth(d.Year(), d.Month(), d.Day())
}

func (m Model) showMonth(year int, month time.Month, day int) (tea.Model, tea.Cmd) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	m.cursor = min(max(day, 1), daysIn(first.Year(), first.Month()))

	return m.apply(calendar.Navigate{Year: first.Year(), Month: first.Month()})
}

func (m Model) cursorDate() string {
	return entity.FormatDate(time.Date(m.state.Year, m.state.Month, m.cursor, 0, 0, 0, 0, time.UTC))
}

func daysIn(year int, month time.Month) int {
	_, last := entity.MonthWindow(year, month)
	return last.Day()
}
