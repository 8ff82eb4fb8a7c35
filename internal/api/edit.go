package api

import (
	"encoding/json"
	"strings"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
)

// Edit rewrites a note's text and due time. Any pending wake-up for the
// note is released before the new state is persisted, so a failed update
// can never leave a timer armed for stale content. A new wake-up is armed
// afterwards when the updated note still carries a future due time.
func (s *Api) Edit(p *common.EditParams) (*common.EditResponse, error) {
	if p.Id <= 0 {
		return nil, ErrInvalidId
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	s.sched.Cancel(p.Id)

	n := &store.Note{
		Id:    p.Id,
		Text:  text,
		DueAt: p.DueAt,
	}
	if err := s.notes.Update(n); err != nil {
		return nil, err
	}
	res := &common.EditResponse{Id: p.Id}
	if p.DueAt != nil && !p.NoRemind {
		res.Armed = s.sched.Schedule(p.Id, *p.DueAt)
	}
	s.notifyChange()
	return res, nil
}

func (s *Api) editHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.EditParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_EDIT, nil, err
	}
	res, err := s.Edit(&p)
	if err != nil {
		return common.UPDATE_EDIT, nil, err
	}
	return common.UPDATE_EDIT, res, nil
}
