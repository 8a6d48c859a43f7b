package entity

import "time"

type Memo struct {
	ID        int64
	UserID    string
	Date      string
	Text      string
	CreatedAt time.Time
}

// MemoOf returns the memo stored for date, if any.
func MemoOf(memos []Memo, date string) (Memo, bool) {
	for _, m := range memos {
		if m.Date == date {
			return m, true
		}
	}

	return Memo{}, false
}
