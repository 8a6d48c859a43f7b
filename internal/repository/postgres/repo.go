package postgres

import (
	"context"

	"github.com/evgeniy-krivenko/blog-calendar/pkg/database"
)

type DB interface {
	database.Tx
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type Repo struct {
	db DB
}

func New(db DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return r.db.RunInTx(ctx, f)
}
