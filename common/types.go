package common

// NoteInfo is the wire representation of a persisted note.
type NoteInfo struct {
	Id    int64  `json:"id"`
	Text  string `json:"text"`
	DueAt *int64 `json:"due_at,omitempty"` // epoch milliseconds, nil = no reminder
}

type AddParams struct {
	Text  string `json:"text"`
	DueAt *int64 `json:"due_at,omitempty"`
	// NoRemind saves the note without arming a reminder even when DueAt
	// is set, e.g. after the user declined the notification permission.
	NoRemind bool `json:"no_remind,omitempty"`
}

type AddResponse struct {
	Id       int64 `json:"id"`
	Armed    bool  `json:"armed"`
	DueAt    int64 `json:"due_at,omitempty"`
	Deferred bool  `json:"deferred,omitempty"` // saved without reminder
}

type EditParams struct {
	Id       int64  `json:"id"`
	Text     string `json:"text"`
	DueAt    *int64 `json:"due_at,omitempty"`
	NoRemind bool   `json:"no_remind,omitempty"`
}

type EditResponse struct {
	Id    int64 `json:"id"`
	Armed bool  `json:"armed"`
}

type DeleteParams struct {
	Id int64 `json:"id"`
}

type RestoreParams struct {
	// The note as it existed before deletion. The store may assign a
	// fresh id on re-insert; the response reports both.
	Note NoteInfo `json:"note"`
}

type RestoreResponse struct {
	OldId int64 `json:"old_id"`
	NewId int64 `json:"new_id"`
	Armed bool  `json:"armed"`
}

type GetParams struct {
	Id int64 `json:"id"`
}

type GetResponse struct {
	Note NoteInfo `json:"note"`
}

type ListParams struct {
	// DueOnly restricts the listing to notes that carry a due timestamp.
	DueOnly bool `json:"due_only,omitempty"`
}

type ListResponse struct {
	Notes []NoteInfo `json:"notes"`
}

type NextParams struct {
	// After is the epoch-millisecond lower bound; zero means "now".
	After int64 `json:"after,omitempty"`
}

type NextResponse struct {
	// Note is nil when no upcoming reminder exists.
	Note *NoteInfo `json:"note,omitempty"`
}

// ReminderUpdate is pushed to attached clients when a reminder fires
// or when the summary feed should be refreshed.
type ReminderUpdate struct {
	Action ReminderAction `json:"action"`
	Id     int64          `json:"id,omitempty"`
	Text   string         `json:"text,omitempty"`
}

type AttachResponse struct {
	Attached bool `json:"attached"`
}

type StopResponse struct {
	Stopped bool `json:"stopped"`
}
