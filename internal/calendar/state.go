// Package calendar holds the calendar view state machine. It performs no I/O:
// Apply returns the next state and the effects the caller must run, and the
// results come back as events.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseEditing
	PhaseSaving
	PhaseConfirmDelete
	PhaseDeleting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading-memos"
	case PhaseEditing:
		return "editing"
	case PhaseSaving:
		return "saving"
	case PhaseConfirmDelete:
		return "delete-confirm"
	case PhaseDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Editor is the open memo dialog. MemoID is zero when a new memo is created.
type Editor struct {
	Date   string
	Draft  string
	MemoID int64
}

func (e Editor) EditMode() bool {
	return e.MemoID != 0
}

type State struct {
	UserID string
	Year   int
	Month  time.Month
	Memos  []entity.Memo
	Phase  Phase
	Editor Editor
	Err    string
	Notice string

	token       uint64
	pendingDate string
}

// New starts the view on the given month and asks for its memos.
func New(userID string, year int, month time.Month) (State, []Effect) {
	return State{UserID: userID}.navigate(year, month)
}

// EditorOpen reports whether the memo dialog is shown.
func (s State) EditorOpen() bool {
	switch s.Phase {
	case PhaseEditing, PhaseSaving, PhaseConfirmDelete, PhaseDeleting:
		return true
	default:
		return false
	}
}

// MemoOf returns the loaded memo of date.
func (s State) MemoOf(date string) (entity.Memo, bool) {
	return entity.MemoOf(s.Memos, date)
}

// Apply advances the state by one event. Events that do not fit the current
// phase leave the state unchanged.
func (s State) Apply(ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Navigate:
		if s.EditorOpen() {
			return s, nil
		}
		s.pendingDate = ""
		return s.navigate(ev.Year, ev.Month)

	case SelectDate:
		return s.selectDate(ev.Date)

	case MemosLoaded:
		if ev.Token != s.token || s.Phase != PhaseLoading {
			return s, nil
		}
		s.Memos = ev.Memos
		s.Phase = PhaseIdle
		if s.pendingDate != "" {
			date := s.pendingDate
			s.pendingDate = ""
			s = s.openEditor(date)
		}
		return s, nil

	case MemosFailed:
		if ev.Token != s.token || s.Phase != PhaseLoading {
			return s, nil
		}
		s.Memos = nil
		s.Phase = PhaseIdle
		s.pendingDate = ""
		s.Err = errorText("load memos", ev.Err)
		return s, nil

	case EditText:
		if s.Phase != PhaseEditing {
			return s, nil
		}
		s.Editor.Draft = ev.Text
		return s, nil

	case Save:
		if s.Phase != PhaseEditing {
			return s, nil
		}
		if strings.TrimSpace(s.Editor.Draft) == "" {
			s.Err = "memo text must not be empty"
			return s, nil
		}
		s.Phase = PhaseSaving
		s.Err = ""
		return s, []Effect{SaveMemo{UserID: s.UserID, Date: s.Editor.Date, Text: s.Editor.Draft}}

	case Saved:
		if s.Phase != PhaseSaving {
			return s, nil
		}
		s.Editor = Editor{}
		s.Notice = "memo saved for " + ev.Memo.Date
		return s.refetch()

	case SaveFailed:
		if s.Phase != PhaseSaving {
			return s, nil
		}
		s.Phase = PhaseEditing
		s.Err = errorText("save memo", ev.Err)
		return s, nil

	case RequestDelete:
		if s.Phase != PhaseEditing || !s.Editor.EditMode() {
			return s, nil
		}
		s.Phase = PhaseConfirmDelete
		s.Err = ""
		return s, nil

	case ConfirmDelete:
		if s.Phase != PhaseConfirmDelete {
			return s, nil
		}
		s.Phase = PhaseDeleting
		return s, []Effect{DeleteMemo{ID: s.Editor.MemoID}}

	case Deleted:
		if s.Phase != PhaseDeleting {
			return s, nil
		}
		s.Notice = "memo deleted for " + s.Editor.Date
		s.Editor = Editor{}
		return s.refetch()

	case DeleteFailed:
		if s.Phase != PhaseDeleting {
			return s, nil
		}
		s.Phase = PhaseIdle
		s.Editor = Editor{}
		s.Err = errorText("delete memo", ev.Err)
		return s, nil

	case Cancel:
		switch s.Phase {
		case PhaseEditing:
			s.Phase = PhaseIdle
			s.Editor = Editor{}
			s.Err = ""
		case PhaseConfirmDelete:
			s.Phase = PhaseEditing
		case PhaseLoading:
			s.pendingDate = ""
		}
		return s, nil
	}

	return s, nil
}

func (s State) navigate(year int, month time.Month) (State, []Effect) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	s.Year, s.Month = first.Year(), first.Month()
	s.Memos = nil
	s.Err = ""
	s.Notice = ""

	return s.refetch()
}

func (s State) refetch() (State, []Effect) {
	s.token++
	s.Phase = PhaseLoading

	return s, []Effect{FetchMonth{Token: s.token, UserID: s.UserID, Year: s.Year, Month: s.Month}}
}

func (s State) selectDate(date string) (State, []Effect) {
	if s.Phase != PhaseIdle && s.Phase != PhaseLoading {
		return s, nil
	}

	d, err := entity.ParseDate(date)
	if err != nil {
		s.Err = fmt.Sprintf("invalid date %q", date)
		return s, nil
	}

	if d.Year() != s.Year || d.Month() != s.Month {
		next, effects := s.navigate(d.Year(), d.Month())
		next.pendingDate = date
		return next, effects
	}

	if s.Phase == PhaseLoading {
		s.pendingDate = date
		return s, nil
	}

	return s.openEditor(date), nil
}

func (s State) openEditor(date string) State {
	s.Phase = PhaseEditing
	s.Err = ""
	s.Notice = ""
	s.Editor = Editor{Date: date}

	if memo, ok := s.MemoOf(date); ok {
		s.Editor.Draft = memo.Text
		s.Editor.MemoID = memo.ID
	}

	return s
}

func errorText(op string, err error) string {
	if err == nil {
		return "failed to " + op
	}

	return fmt.Sprintf("failed to %s: %v", op, err)
}
