package scheduler

import (
	"time"

	"github.com/noteping/noteping/internal/perm"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// AlarmService is the platform timer facility the scheduler arms wake-ups
// on. internal/alarm provides the production implementation.
type AlarmService interface {
	ArmOnce(noteId int64, at time.Time) error
	Disarm(noteId int64)
	CanArmPrecise() bool
}

// NoteSource is the slice of the note store the recovery sweep reads.
type NoteSource interface {
	GetAll() ([]*store.Note, error)
}

// Scheduler implements the wake-up scheduling rules on top of an
// AlarmService.
type Scheduler struct {
	log    logger.Logger
	alarms AlarmService
	perms  perm.Oracle

	// now is the clock; replaced in tests.
	now func() time.Time
}

// New creates a Scheduler.
func New(l logger.Logger, alarms AlarmService, perms perm.Oracle) *Scheduler {
	return &Scheduler{
		log:    l,
		alarms: alarms,
		perms:  perms,
		now:    time.Now,
	}
}

// Schedule arms exactly one wake-up for the note at dueMs (epoch
// milliseconds), replacing any previously armed wake-up for the same id.
// Calls with an invalid id, a non-future due time, or missing precise-timer
// authorization are logged no-ops. Platform rejection is caught and logged;
// nothing propagates to the caller. Reports whether a wake-up was armed.
func (s *Scheduler) Schedule(noteId, dueMs int64) bool {
	if noteId <= 0 {
		s.log.Warning("scheduler: invalid note id %d, wake-up not armed", noteId)
		return false
	}
	if !s.perms.PreciseTimersAllowed() || !s.alarms.CanArmPrecise() {
		s.log.Warning("scheduler: precise wake-ups not authorized, note %d not armed", noteId)
		return false
	}
	nowMs := s.now().UnixMilli()
	if dueMs <= nowMs {
		s.log.Warning("scheduler: due time %d for note %d is not in the future, wake-up not armed", dueMs, noteId)
		return false
	}
	at := time.UnixMilli(dueMs)
	if err := s.alarms.ArmOnce(noteId, at); err != nil {
		s.log.Error("scheduler: failed to arm wake-up for note %d: %v", noteId, err)
		return false
	}
	s.log.Info("scheduler: armed wake-up for note %d at %s", noteId, at.Format(time.RFC3339))
	return true
}

// Cancel releases the pending wake-up for the note, if any. Idempotent;
// cancelling an id with no armed wake-up is a silent no-op.
func (s *Scheduler) Cancel(noteId int64) {
	if noteId <= 0 {
		s.log.Warning("scheduler: invalid note id %d for cancel", noteId)
		return
	}
	s.alarms.Disarm(noteId)
}

// Sweep is the recovery pass run once after a daemon restart. It scans all
// persisted notes and re-arms a wake-up for every note whose due time is
// still in the future. Per-note scheduling failures are logged and do not
// abort the sweep; partial success is expected. Returns the number of
// notes re-armed.
func (s *Scheduler) Sweep(src NoteSource) int {
	notes, err := src.GetAll()
	if err != nil {
		s.log.Error("scheduler: recovery sweep could not read notes: %v", err)
		return 0
	}
	nowMs := s.now().UnixMilli()
	rearmed := 0
	for _, n := range notes {
		if n.DueAt == nil {
			continue
		}
		if *n.DueAt <= nowMs {
			s.log.Info("scheduler: sweep skipping note %d, due time already passed", n.Id)
			continue
		}
		if s.Schedule(n.Id, *n.DueAt) {
			rearmed++
		}
	}
	s.log.Info("scheduler: recovery sweep finished, re-armed %d of %d notes", rearmed, len(notes))
	return rearmed
}
