package alarm

import "time"

// Wakeup represents a pending one-shot wake-up in the alarm heap.
// It is an in-memory only type — the heap is rebuilt from the note store
// by the recovery sweep on daemon restart.
type Wakeup struct {
	// NoteId is the identifier carried as the wake-up payload and the
	// sole identity key for arm/disarm.
	NoteId int64
	// TriggerAt is the wall-clock time the wake-up should fire.
	TriggerAt time.Time
}
