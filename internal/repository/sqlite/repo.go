package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z"

type Repo struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %v", s, err)
	}

	return t, nil
}
