package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

type memoRow struct {
	ID        int64
	UserID    string
	Date      pgtype.Date
	Memo      string
	CreatedAt pgtype.Timestamptz
}

func (r *memoRow) scanArgs() []any {
	return []any{&r.ID, &r.UserID, &r.Date, &r.Memo, &r.CreatedAt}
}

func convertMemoToEntity(row *memoRow) entity.Memo {
	return entity.Memo{
		ID:        row.ID,
		UserID:    row.UserID,
		Date:      convertDateToString(row.Date),
		Text:      row.Memo,
		CreatedAt: convertTimestamptzToTime(row.CreatedAt),
	}
}

func convertTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func convertTimeToDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}

func convertDateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}

	return entity.FormatDate(d.Time)
}

func convertNullInt8(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}

	return &v.Int64
}
