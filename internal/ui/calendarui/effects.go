package calendarui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evgeniy-krivenko/blog-calendar/internal/calendar"
	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

// run turns state machine effects into commands. Every command answers with
// a calendar.Event.
func (m Model) run(effects []calendar.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))

	for _, eff := range effects {
		switch eff := eff.(type) {
		case calendar.FetchMonth:
			cmds = append(cmds, m.fetchMonth(eff))
		case calendar.SaveMemo:
			cmds = append(cmds, m.saveMemo(eff))
		case calendar.DeleteMemo:
			cmds = append(cmds, m.deleteMemo(eff))
		}
	}

	return tea.Batch(cmds...)
}

func (m Model) fetchMonth(eff calendar.FetchMonth) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		memos, err := m.api.FetchMemos(ctx, eff.UserID, eff.Year, int(eff.Month))
		if err != nil {
			return calendar.MemosFailed{Token: eff.Token, Err: err}
		}

		return calendar.MemosLoaded{Token: eff.Token, Memos: convertMemosToEntity(memos)}
	}
}

func (m Model) saveMemo(eff calendar.SaveMemo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		memo, err := m.api.SaveMemo(ctx, eff.UserID, eff.Date, eff.Text)
		if err != nil {
			return calendar.SaveFailed{Err: err}
		}

		return calendar.Saved{Memo: convertMemoToEntity(memo)}
	}
}

func (m Model) deleteMemo(eff calendar.DeleteMemo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		if err := m.api.DeleteMemo(ctx, eff.ID); err != nil {
			return calendar.DeleteFailed{Err: err}
		}

		return calendar.Deleted{}
	}
}

func convertMemoToEntity(m v1.Memo) entity.Memo {
	return entity.Memo{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func convertMemosToEntity(memos []v1.Memo) []entity.Memo {
	out := make([]entity.Memo, 0, len(memos))
	for _, m := range memos {
		out = append(out, convertMemoToEntity(m))
	}

	return out
}
