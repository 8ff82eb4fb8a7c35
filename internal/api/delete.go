package api

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
)

// Delete removes a note. The wake-up is released first; the dispatcher
// tolerates a firing for a missing note, but there is no reason to let
// one linger. Deleting an absent note is not an error.
func (s *Api) Delete(p *common.DeleteParams) error {
	if p.Id <= 0 {
		return ErrInvalidId
	}
	s.sched.Cancel(p.Id)
	if err := s.notes.Delete(p.Id); err != nil {
		return err
	}
	s.notifyChange()
	return nil
}

func (s *Api) deleteHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.DeleteParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_DELETE, nil, err
	}
	if err := s.Delete(&p); err != nil {
		return common.UPDATE_DELETE, nil, err
	}
	return common.UPDATE_DELETE, &common.DeleteParams{Id: p.Id}, nil
}
