package calendar

import (
	"time"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

type Event interface {
	isEvent()
}

// Navigate shows another month. Out of range months roll over the year.
type Navigate struct {
	Year  int
	Month time.Month
}

// SelectDate opens the editor for a YYYY-MM-DD date.
type SelectDate struct {
	Date string
}

type MemosLoaded struct {
	Token uint64
	Memos []entity.Memo
}

type MemosFailed struct {
	Token uint64
	Err   error
}

type EditText struct {
	Text string
}

type Save struct{}

type Saved struct {
	Memo entity.Memo
}

type SaveFailed struct {
	Err error
}

type RequestDelete struct{}

type ConfirmDelete struct{}

type Deleted struct{}

type DeleteFailed struct {
	Err error
}

type Cancel struct{}

func (Navigate) isEvent()      {}
func (SelectDate) isEvent()    {}
func (MemosLoaded) isEvent()   {}
func (MemosFailed) isEvent()   {}
func (EditText) isEvent()      {}
func (Save) isEvent()          {}
func (Saved) isEvent()         {}
func (SaveFailed) isEvent()    {}
func (RequestDelete) isEvent() {}
func (ConfirmDelete) isEvent() {}
func (Deleted) isEvent()       {}
func (DeleteFailed) isEvent()  {}
func (Cancel) isEvent()        {}

// Effect is work the caller runs on behalf of the state machine.
type Effect interface {
	isEffect()
}

// FetchMonth loads the memos of a month. The result must carry Token back.
type FetchMonth struct {
	Token  uint64
	UserID string
	Year   int
	Month  time.Month
}

type SaveMemo struct {
	UserID string
	Date   string
	Text   string
}

type DeleteMemo struct {
	ID int64
}

func (FetchMonth) isEffect() {}
func (SaveMemo) isEffect()   {}
func (DeleteMemo) isEffect() {}
