package api

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
)

// List returns all notes, due-dated ones first in due order. DueOnly
// restricts the listing to notes carrying a due timestamp.
func (s *Api) List(p *common.ListParams) (*common.ListResponse, error) {
	notes, err := s.notes.GetAll()
	if err != nil {
		return nil, err
	}
	res := &common.ListResponse{Notes: make([]common.NoteInfo, 0, len(notes))}
	for _, n := range notes {
		if p.DueOnly && n.DueAt == nil {
			continue
		}
		res.Notes = append(res.Notes, toNoteInfo(n))
	}
	return res, nil
}

func (s *Api) listHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.ListParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_LIST, nil, err
	}
	res, err := s.List(&p)
	if err != nil {
		return common.UPDATE_LIST, nil, err
	}
	return common.UPDATE_LIST, res, nil
}
