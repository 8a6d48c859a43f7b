package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

const (
	saveMemoQuery = `
INSERT INTO calendar_memos (user_id, date, memo, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, date) DO UPDATE SET memo = excluded.memo
RETURNING id, user_id, date, memo, created_at`

	fetchMemosQuery = `
SELECT id, user_id, date, memo, created_at
FROM calendar_memos
WHERE user_id = ? AND date >= ? AND date <= ?
ORDER BY date ASC`

	memoOwnerQuery  = `SELECT user_id FROM calendar_memos WHERE id = ?`
	deleteMemoQuery = `DELETE FROM calendar_memos WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemo(s rowScanner) (entity.Memo, error) {
	var (
		m         entity.Memo
		createdAt string
	)
	if err := s.Scan(&m.ID, &m.UserID, &m.Date, &m.Text, &createdAt); err != nil {
		return entity.Memo{}, err
	}

	t, err := parseTime(createdAt)
	if err != nil {
		return entity.Memo{}, err
	}
	m.CreatedAt = t

	return m, nil
}

func (r *Repo) SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error) {
	day, err := entity.ParseDate(date)
	if err != nil {
		return entity.Memo{}, entity.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	row := r.conn(ctx).QueryRowContext(ctx, saveMemoQuery, userID, entity.FormatDate(day), text, formatTime(r.now()))
	m, err := scanMemo(row)
	if err != nil {
		return entity.Memo{}, entity.NewStoreError("save memo", err)
	}

	slogx.Debug(ctx, "success to save memo", slogx.UserID(userID), slogx.MemoID(m.ID))

	return m, nil
}

func (r *Repo) FetchMemos(ctx context.Context, userID string, year int, month time.Month) ([]entity.Memo, error) {
	first, last := entity.MonthWindow(year, month)

	rows, err := r.conn(ctx).QueryContext(ctx, fetchMemosQuery, userID, entity.FormatDate(first), entity.FormatDate(last))
	if err != nil {
		return nil, entity.NewStoreError("fetch memos", err)
	}
	defer rows.Close()

	memos := make([]entity.Memo, 0)
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, entity.NewStoreError("scan memo", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("fetch memos", err)
	}

	return memos, nil
}

func (r *Repo) MemoOwner(ctx context.Context, id int64) (string, error) {
	var owner string
	if err := r.conn(ctx).QueryRowContext(ctx, memoOwnerQuery, id).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", entity.ErrMemoNotFound
		}
		return "", entity.NewStoreError("get memo owner", err)
	}

	return owner, nil
}

func (r *Repo) DeleteMemo(ctx context.Context, id int64) error {
	res, err := r.conn(ctx).ExecContext(ctx, deleteMemoQuery, id)
	if err != nil {
		return entity.NewStoreError("delete memo", err)
	}

	n, _ := res.RowsAffected()
	slogx.Debug(ctx, "delete memo", slogx.MemoID(id), slog.Int64("rows", n))

	return nil
}
