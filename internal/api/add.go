package api

import (
	"encoding/json"
	"strings"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
)

// Add persists a new note and, when a due time is set, arms its wake-up.
// The note is inserted first so the wake-up payload carries the assigned
// id; a note is never armed before it is durable.
func (s *Api) Add(p *common.AddParams) (*common.AddResponse, error) {
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, ErrTextRequired
	}
	n := &store.Note{
		Text:  text,
		DueAt: p.DueAt,
	}
	if _, err := s.notes.Insert(n); err != nil {
		return nil, err
	}
	res := &common.AddResponse{Id: n.Id}
	if p.DueAt != nil {
		res.DueAt = *p.DueAt
		if p.NoRemind {
			// Saved without a reminder, e.g. notifications declined.
			res.Deferred = true
			s.log.Info("api: note %d saved without reminder", n.Id)
		} else {
			res.Armed = s.sched.Schedule(n.Id, *p.DueAt)
		}
	}
	s.notifyChange()
	return res, nil
}

func (s *Api) addHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.AddParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_ADD, nil, err
	}
	res, err := s.Add(&p)
	if err != nil {
		return common.UPDATE_ADD, nil, err
	}
	return common.UPDATE_ADD, res, nil
}
