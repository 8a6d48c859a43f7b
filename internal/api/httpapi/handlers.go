package httpapi

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	"github.com/evgeniy-krivenko/blog-calendar/internal/identity"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

type memosUsecase interface {
	SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error)
	FetchMonth(ctx context.Context, userID string, year, month int) ([]entity.Memo, error)
	DeleteMemo(ctx context.Context, callerID string, id int64) error
}

type feedUsecase interface {
	LatestPosts(ctx context.Context, limit int) ([]entity.Post, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	memos    memosUsecase
	feed     feedUsecase
	health   pinger
	validate *validator.Validate
}

func NewHandler(memos memosUsecase, feed feedUsecase, health pinger) *Handler {
	return &Handler{
		memos:    memos,
		feed:     feed,
		health:   health,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// resolveUser picks the user a request acts for. An authenticated caller may
// omit the user id but may not act for somebody else.
func resolveUser(ctx context.Context, requested string) (string, error) {
	caller, err := identity.UserID(ctx)
	if err != nil {
		return requested, nil
	}

	if requested == "" {
		return caller, nil
	}
	if requested != caller {
		return "", entity.ErrForbidden
	}

	return requested, nil
}

func callerID(ctx context.Context) string {
	id, _ := identity.UserID(ctx)
	return id
}

// writeUsecaseError maps the error taxonomy to a status code. Unexpected
// errors answer with fallback and are logged with details.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		ve *entity.ValidationError
		se *entity.StoreError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, ve.Error())
	case errors.Is(err, entity.ErrForbidden):
		writeError(w, r, http.StatusForbidden, entity.ErrForbidden.Error())
	case errors.As(err, &se):
		slogx.Error(r.Context(), "store failure", slogx.Err(err))
		writeError(w, r, http.StatusInternalServerError, se.Error())
	default:
		slogx.Error(r.Context(), "unexpected failure", slogx.Err(err))
		writeError(w, r, http.StatusInternalServerError, fallback)
	}
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, entity.NewValidationError(field, "must be an integer")
	}

	return v, nil
}
