package memos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

type memosRepository interface {
	SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error)
	FetchMemos(ctx context.Context, userID string, year int, month time.Month) ([]entity.Memo, error)
	MemoOwner(ctx context.Context, id int64) (string, error)
	DeleteMemo(ctx context.Context, id int64) error
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type Options struct {
	repo memosRepository
}

func NewOptions(repo memosRepository) Options {
	return Options{repo: repo}
}

func (o *Options) Validate() error {
	if o.repo == nil {
		return errors.New("field `repo` is required")
	}

	return nil
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate memos usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// SaveMemo creates the memo of the day or replaces its text.
func (u *Usecase) SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error) {
	if strings.TrimSpace(userID) == "" {
		return entity.Memo{}, entity.NewValidationError("userId", "is required")
	}
	if date == "" {
		return entity.Memo{}, entity.NewValidationError("date", "is required")
	}
	if _, err := entity.ParseDate(date); err != nil {
		return entity.Memo{}, entity.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	memo, err := u.repo.SaveMemo(ctx, userID, date, text)
	if err != nil {
		return entity.Memo{}, fmt.Errorf("usecase save memo: %w", err)
	}

	slogx.Info(ctx, "success to save memo", slogx.UserID(userID), slogx.MemoID(memo.ID))

	return memo, nil
}

// FetchMonth returns the user's memos of one calendar month ordered by date.
func (u *Usecase) FetchMonth(ctx context.Context, userID string, year, month int) ([]entity.Memo, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, entity.NewValidationError("userId", "is required")
	}
	if year < 1 || year > 9999 {
		return nil, entity.NewValidationError("year", "must be between 1 and 9999")
	}
	if month < 1 || month > 12 {
		return nil, entity.NewValidationError("month", "must be between 1 and 12")
	}

	memos, err := u.repo.FetchMemos(ctx, userID, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("usecase fetch memos: %w", err)
	}

	return memos, nil
}

// DeleteMemo deletes a memo by id. With a known caller the memo must belong
// to the caller; an anonymous caller deletes by id only. A missing memo is not an error.
func (u *Usecase) DeleteMemo(ctx context.Context, callerID string, id int64) error {
	if id <= 0 {
		return entity.NewValidationError("id", "must be a positive integer")
	}

	if callerID == "" {
		if err := u.repo.DeleteMemo(ctx, id); err != nil {
			return fmt.Errorf("usecase delete memo: %w", err)
		}
		return nil
	}

	err := u.repo.RunInTx(ctx, func(ctx context.Context) error {
		owner, err := u.repo.MemoOwner(ctx, id)
		if err != nil {
			if errors.Is(err, entity.ErrMemoNotFound) {
				return nil
			}
			return err
		}

		if owner != callerID {
			return entity.ErrForbidden
		}

		return u.repo.DeleteMemo(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("usecase delete memo: %w", err)
	}

	slogx.Info(ctx, "success to delete memo", slogx.UserID(callerID), slogx.MemoID(id))

	return nil
}
