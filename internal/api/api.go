// Package api implements the note operations behind the daemon's
// request surface. The same methods back both the framed socket
// transport and the JSON-RPC bridge.
package api

import (
	"errors"
	"time"

	"github.com/noteping/noteping/common"
	"github.com/noteping/noteping/internal/server"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// ErrTextRequired rejects notes with empty or whitespace-only text.
var ErrTextRequired = errors.New("text is required")

// ErrInvalidId rejects operations on non-positive note ids.
var ErrInvalidId = errors.New("invalid note id")

// NoteStore is the persistence surface the API drives.
type NoteStore interface {
	Insert(n *store.Note) (int64, error)
	Update(n *store.Note) error
	Delete(id int64) error
	GetById(id int64) (*store.Note, error)
	GetAll() ([]*store.Note, error)
	GetNextDueAfter(afterMs int64) (*store.Note, error)
}

// WakeupScheduler arms and releases reminder wake-ups.
type WakeupScheduler interface {
	Schedule(noteId, dueMs int64) bool
	Cancel(noteId int64)
}

type Api struct {
	log   logger.Logger
	notes NoteStore
	sched WakeupScheduler

	// now is the clock; replaced in tests.
	now func() time.Time
	// onChange, when set, runs after every successful mutation. The
	// daemon wires it to the summary push broadcast.
	onChange func()
	// stop, when set, shuts the daemon down. Wired by the daemon.
	stop func()
}

func NewApi(l logger.Logger, notes NoteStore, sched WakeupScheduler) *Api {
	return &Api{
		log:   l,
		notes: notes,
		sched: sched,
		now:   time.Now,
	}
}

// SetChangeHook registers the mutation observer.
func (s *Api) SetChangeHook(hook func()) {
	s.onChange = hook
}

// SetStopFunc registers the daemon shutdown trigger.
func (s *Api) SetStopFunc(stop func()) {
	s.stop = stop
}

// RegisterHandlers binds the note API methods to the socket server.
func (s *Api) RegisterHandlers(srv *server.Server) {
	srv.RegisterHandler(common.UPDATE_ADD, s.addHandler)
	srv.RegisterHandler(common.UPDATE_EDIT, s.editHandler)
	srv.RegisterHandler(common.UPDATE_DELETE, s.deleteHandler)
	srv.RegisterHandler(common.UPDATE_RESTORE, s.restoreHandler)
	srv.RegisterHandler(common.UPDATE_GET, s.getHandler)
	srv.RegisterHandler(common.UPDATE_LIST, s.listHandler)
	srv.RegisterHandler(common.UPDATE_NEXT, s.nextHandler)
	srv.RegisterHandler(common.UPDATE_ATTACH, s.attachHandler)
	srv.RegisterHandler(common.UPDATE_STOP, s.stopHandler)
}

func (s *Api) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func toNoteInfo(n *store.Note) common.NoteInfo {
	return common.NoteInfo{
		Id:    n.Id,
		Text:  n.Text,
		DueAt: n.DueAt,
	}
}

var _ server.NoteService = (*Api)(nil)
