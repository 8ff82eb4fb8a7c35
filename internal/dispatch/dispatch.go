// Package dispatch handles fired wake-ups. Each firing walks the state
// machine Triggered -> Validating -> {Presenting, Skipped, Failed} ->
// Completed: the note is re-read from the store (it may have been deleted
// after the timer was armed — an expected race, not an error), then
// presented. The work runs off the caller's goroutine and holds a
// stay-alive token until the completion signal fires, exactly once, on
// every exit path including panics.
package dispatch

import (
	"runtime/debug"
	"sync"

	"github.com/noteping/noteping/internal/lifetime"
	"github.com/noteping/noteping/internal/notify"
	"github.com/noteping/noteping/internal/store"
	"github.com/noteping/noteping/pkg/logger"
)

// State is a step of the per-firing state machine.
type State string

const (
	StateTriggered  State = "triggered"
	StateValidating State = "validating"
	StatePresenting State = "presenting"
	StateSkipped    State = "skipped"
	StateFailed     State = "failed"
	StateCompleted  State = "completed"
)

// NoteLookup is the slice of the note store the dispatcher reads.
type NoteLookup interface {
	GetById(id int64) (*store.Note, error)
}

// Dispatcher validates and presents fired reminders.
type Dispatcher struct {
	log       logger.Logger
	notes     NoteLookup
	presenter notify.Presenter
	keeper    *lifetime.Keeper

	// onDone, when set, observes the terminal branch of each firing.
	// Fires exactly once per Dispatch call, after all other work.
	onDone func(noteId int64, final State)
}

// New creates a Dispatcher.
func New(l logger.Logger, notes NoteLookup, presenter notify.Presenter, keeper *lifetime.Keeper) *Dispatcher {
	return &Dispatcher{
		log:       l,
		notes:     notes,
		presenter: presenter,
		keeper:    keeper,
	}
}

// SetDoneHook registers a completion observer. Must be called before the
// dispatcher is wired to the alarm service.
func (d *Dispatcher) SetDoneHook(hook func(noteId int64, final State)) {
	d.onDone = hook
}

// Dispatch is the entrypoint invoked when a wake-up fires. It returns
// immediately; validation and presentation run on a background goroutine
// so the alarm loop is never blocked. The completion signal — releasing
// the stay-alive token and invoking the done hook — fires exactly once
// no matter which branch is taken.
func (d *Dispatcher) Dispatch(noteId int64) {
	token := d.keeper.Hold("dispatch")

	go func() {
		final := StateTriggered

		var once sync.Once
		complete := func() {
			once.Do(func() {
				if d.onDone != nil {
					d.onDone(noteId, final)
				}
				token.Release()
			})
		}
		defer complete()
		defer func() {
			if r := recover(); r != nil {
				final = StateFailed
				d.log.Error("dispatch: panic handling note %d: %v\n%s", noteId, r, debug.Stack())
			}
		}()

		if noteId <= 0 {
			final = StateFailed
			d.log.Error("dispatch: invalid note id %d in wake-up payload", noteId)
			return
		}

		final = StateValidating
		note, err := d.notes.GetById(noteId)
		if err == store.ErrNotFound {
			// Deleted after the timer was armed; expected, skip quietly.
			final = StateSkipped
			d.log.Info("dispatch: note %d no longer exists, skipping presentation", noteId)
			return
		}
		if err != nil {
			final = StateFailed
			d.log.Error("dispatch: failed to load note %d: %v", noteId, err)
			return
		}

		final = StatePresenting
		if err := d.presenter.ShowReminder(note.Id, note.Text); err != nil {
			// The firing is already consumed; a missed presentation is
			// not recoverable. Log and complete without retry.
			d.log.Error("dispatch: failed to present reminder for note %d: %v", noteId, err)
			return
		}
		d.presenter.RefreshSummary()
	}()
}
