package api

import (
	"encoding/json"
	"errors"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
)

// Next returns the earliest note strictly after the given moment (epoch
// milliseconds; zero means now). This backs the widget's upcoming-note
// display. No upcoming note yields an empty response, not an error.
func (s *Api) Next(p *common.NextParams) (*common.NextResponse, error) {
	after := p.After
	if after == 0 {
		after = s.now().UnixMilli()
	}
	n, err := s.notes.GetNextDueAfter(after)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	res := &common.NextResponse{}
	if n != nil {
		info := toNoteInfo(n)
		res.Note = &info
	}
	return res, nil
}

func (s *Api) nextHandler(_ *server.SyncConn, _ *server.Pool, body json.RawMessage) (common.UpdateType, any, error) {
	var p common.NextParams
	if err := json.Unmarshal(body, &p); err != nil {
		return common.UPDATE_NEXT, nil, err
	}
	res, err := s.Next(&p)
	if err != nil {
		return common.UPDATE_NEXT, nil, err
	}
	return common.UPDATE_NEXT, res, nil
}
