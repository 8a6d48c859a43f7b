package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

const (
	saveMemoQuery = `
INSERT INTO calendar_memos (user_id, date, memo)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, date) DO UPDATE SET memo = EXCLUDED.memo
RETURNING id, user_id, date, memo, created_at`

	fetchMemosQuery = `
SELECT id, user_id, date, memo, created_at
FROM calendar_memos
WHERE user_id = $1 AND date >= $2 AND date <= $3
ORDER BY date ASC`

	memoOwnerQuery = `SELECT user_id FROM calendar_memos WHERE id = $1 FOR UPDATE`

	deleteMemoQuery = `DELETE FROM calendar_memos WHERE id = $1`
)

func (r *Repo) SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error) {
	day, err := entity.ParseDate(date)
	if err != nil {
		return entity.Memo{}, entity.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	row := &memoRow{}
	if err := r.db.QueryRow(ctx, saveMemoQuery, userID, convertTimeToDate(day), text).Scan(row.scanArgs()...); err != nil {
		return entity.Memo{}, entity.NewStoreError("save memo", err)
	}

	slogx.Debug(ctx, "success to save memo", slogx.UserID(userID), slogx.MemoID(row.ID))

	return convertMemoToEntity(row), nil
}

func (r *Repo) FetchMemos(ctx context.Context, userID string, year int, month time.Month) ([]entity.Memo, error) {
	first, last := entity.MonthWindow(year, month)

	rows, err := r.db.Query(ctx, fetchMemosQuery, userID, convertTimeToDate(first), convertTimeToDate(last))
	if err != nil {
		return nil, entity.NewStoreError("fetch memos", err)
	}
	defer rows.Close()

	memos := make([]entity.Memo, 0)
	for rows.Next() {
		row := &memoRow{}
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, entity.NewStoreError("scan memo", err)
		}
		memos = append(memos, convertMemoToEntity(row))
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("fetch memos", err)
	}

	return memos, nil
}

func (r *Repo) MemoOwner(ctx context.Context, id int64) (string, error) {
	var owner string
	if err := r.db.QueryRow(ctx, memoOwnerQuery, id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrMemoNotFound
		}
		return "", entity.NewStoreError("get memo owner", err)
	}

	return owner, nil
}

func (r *Repo) DeleteMemo(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteMemoQuery, id)
	if err != nil {
		return entity.NewStoreError("delete memo", err)
	}

	slogx.Debug(ctx, "delete memo", slogx.MemoID(id), slog.Int64("rows", tag.RowsAffected()))

	return nil
}
