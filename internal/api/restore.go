package api

import (
	"encoding/json"
	"strings"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
)

// Restore re-inserts a previously deleted note, e.g. after an undo. The
// store may assign a fresh id; when it drifts from the original the
// response reports both and the drift is logged, since any external
// reference to the old id is now stale. A still-future due time is
// re-armed under the new id.
func (s *Api) Restore(p *common.RestoreParams) (*common.RestoreResponse, error) {
	text := strings.TrimSpace(p.Note.Text)
	if text == "" {
		return nil, ErrTextRequired
	}
	n := &store.Note{
		Text:  text,
		DueAt: p.Note.DueAt,
	}
	if _, err := s.notes.Insert(n); err != nil {
		return nil, err
	}
	if p.Note.Id != 0 && n.Id != p.Note.Id {
		s.log.Warning("api: restored note %d under new id %d", p.Note.Id, n.Id)
	}
	res := &common.RestoreResponse{
		OldId: p.Note.Id,
		NewId: n.Id,
	}
	if n.DueAt != nil {
		res.Armed = s.sched.Schedule(n.Id, *n.DueAt)
	}
	s.notifyChange()
	return res, nil
}

func (s *Api) restoreHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.RestoreParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_RESTORE, nil, err
	}
	res, err := s.Restore(&p)
	if err != nil {
		return common.UPDATE_RESTORE, nil, err
	}
	return common.UPDATE_RESTORE, res, nil
}
