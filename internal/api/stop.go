package api

import (
	"encoding/json"
	"time"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
)

// stopHandler shuts the daemon down. The shutdown is deferred briefly so
// the acknowledgement reaches the client before the listener closes.
func (s *Api) stopHandler(_ *server.SyncConn, _ *server.Pool, _ json.RawMessage) (common.UpdateType, any, error) {
	if s.stop != nil {
		time.AfterFunc(100*time.Millisecond, s.stop)
	}
	return common.UPDATE_STOP, &common.StopResponse{Stopped: true}, nil
}
