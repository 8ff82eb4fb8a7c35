package api

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
)

// attachHandler registers the caller's connection for push updates.
// Attached clients receive reminder and summary broadcasts until they
// disconnect.
func (s *Api) attachHandler(sconn *server.SyncConn, pool *server.Pool, _ json.RawMessage) (common.UpdateType, any, error) {
	pool.Attach(sconn.Conn)
	s.log.Info("api: client attached for push updates (%d attached)", pool.Count())
	return common.UPDATE_ATTACH, &common.AttachResponse{Attached: true}, nil
}
