package api

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
)

// Get returns a single note by id.
func (s *Api) Get(p *common.GetParams) (*common.GetResponse, error) {
	if p.Id <= 0 {
		return nil, ErrInvalidId
	}
	n, err := s.notes.GetById(p.Id)
	if err != nil {
		return nil, err
	}
	return &common.GetResponse{Note: toNoteInfo(n)}, nil
}

func (s *Api) getHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.GetParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_GET, nil, err
	}
	res, err := s.Get(&p)
	if err != nil {
		return common.UPDATE_GET, nil, err
	}
	return common.UPDATE_GET, res, nil
}
