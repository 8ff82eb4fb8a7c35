package alarm

import (
	"container/heap"
	"context"
	"errors"
	"time"
)

const maxSleepCap = 60 * time.Second

// Service manages pending wake-ups using a min-heap. It runs a background
// goroutine that sleeps until the next wake-up's trigger time, then calls
// the onTrigger callback with the note id. Wake-ups survive client
// disconnects but not daemon restarts; the recovery sweep re-arms them.
type Service struct {
	armChan    chan Wakeup
	disarmChan chan int64
	ctx        context.Context
	precise    bool
}

// Option configures a Service.
type Option func(*Service)

// WithoutPreciseWakeups marks the service as unable to guarantee precise
// trigger times. The scheduler consults CanArmPrecise before arming.
func WithoutPreciseWakeups() Option {
	return func(s *Service) { s.precise = false }
}

// New creates and starts a new alarm Service.
// The onTrigger callback is invoked when a wake-up fires.
// The service goroutine exits when ctx is cancelled.
func New(ctx context.Context, onTrigger func(int64), opts ...Option) *Service {
	s := &Service{
		armChan:    make(chan Wakeup, 64),
		disarmChan: make(chan int64, 64),
		ctx:        ctx,
		precise:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run(onTrigger)
	return s
}

// ArmOnce arms exactly one wake-up for the given note id, replacing any
// previously armed wake-up for the same id. Returns an error only when the
// service has shut down and the registration was refused.
func (s *Service) ArmOnce(noteId int64, at time.Time) error {
	select {
	case s.armChan <- Wakeup{NoteId: noteId, TriggerAt: at}:
		return nil
	case <-s.ctx.Done():
		return errors.New("alarm service stopped")
	}
}

// Disarm cancels a pending wake-up by note id. Disarming an id with no
// pending wake-up is a no-op.
func (s *Service) Disarm(noteId int64) {
	select {
	case s.disarmChan <- noteId:
	case <-s.ctx.Done():
	}
}

// CanArmPrecise reports whether the service can honor exact trigger times.
func (s *Service) CanArmPrecise() bool {
	return s.precise
}

// run is the core alarm goroutine implementing the active-object pattern.
// It maintains a min-heap of wake-ups and sleeps with a 60s max-sleep-cap.
// Arm requests remove any existing entry for the same id before pushing,
// which gives ArmOnce its replace semantics without locking.
func (s *Service) run(onTrigger func(int64)) {
	h := &wakeupHeap{}
	heap.Init(h)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	resetTimer := func() <-chan time.Time {
		if timer != nil {
			timer.Stop()
		}
		if h.Len() == 0 {
			// No wake-ups — block indefinitely on channels
			return nil
		}
		next := (*h)[0].TriggerAt
		dur := time.Until(next)
		if dur > maxSleepCap {
			dur = maxSleepCap
		}
		if dur < 0 {
			dur = 0
		}
		timer = time.NewTimer(dur)
		return timer.C
	}

	timerCh := resetTimer()

	for {
		select {
		case <-s.ctx.Done():
			return

		case w := <-s.armChan:
			heapRemoveByKey(h, w.NoteId)
			heapPush(h, w)
			timerCh = resetTimer()

		case id := <-s.disarmChan:
			heapRemoveByKey(h, id)
			timerCh = resetTimer()

		case <-timerCh:
			// Fire all wake-ups whose time has arrived
			now := time.Now()
			for h.Len() > 0 && !(*h)[0].TriggerAt.After(now) {
				w := heapPop(h)
				onTrigger(w.NoteId)
			}
			timerCh = resetTimer()
		}
	}
}
