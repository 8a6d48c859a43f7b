package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

const missingParams = "Missing required parameters"

// SaveMemo POST /api/calendar-memos
func (h *Handler) SaveMemo(w http.ResponseWriter, r *http.Request) {
	var req v1.SaveMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := resolveUser(r.Context(), req.UserID)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to save memo")
		return
	}
	req.UserID = userID

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	memo, err := h.memos.SaveMemo(r.Context(), req.UserID, req.Date, req.Text)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to save memo")
		return
	}

	writeJSON(w, r, http.StatusOK, v1.MemoResponse{Data: convertMemoToAPI(memo)})
}

// FetchMemos GET /api/calendar-memos?userId=&year=&month=
func (h *Handler) FetchMemos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := resolveUser(r.Context(), q.Get("userId"))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch memos")
		return
	}

	rawYear, rawMonth := q.Get("year"), q.Get("month")
	if userID == "" || rawYear == "" || rawMonth == "" {
		writeError(w, r, http.StatusBadRequest, missingParams)
		return
	}

	year, err := parseInt("year", rawYear)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch memos")
		return
	}
	month, err := parseInt("month", rawMonth)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch memos")
		return
	}

	memos, err := h.memos.FetchMonth(r.Context(), userID, year, month)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch memos")
		return
	}

	writeJSON(w, r, http.StatusOK, v1.MemosResponse{Data: convertMemosToAPI(memos)})
}

// DeleteMemo DELETE /api/calendar-memos/{id}
func (h *Handler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid memo id")
		return
	}

	if err := h.memos.DeleteMemo(r.Context(), callerID(r.Context()), id); err != nil {
		writeUsecaseError(w, r, err, "Internal Server Error")
		return
	}

	writeJSON(w, r, http.StatusOK, v1.DeleteResponse{Success: true, Message: "Memo deleted successfully"})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
