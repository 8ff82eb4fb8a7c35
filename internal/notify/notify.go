// Package notify is the presentation layer: it renders fired reminders as
// desktop notifications and emits summary-refresh signals for attached
// widget clients.
package notify

// Presenter is consumed by the dispatcher and the API orchestration.
type Presenter interface {
	// ShowReminder presents a notification for the note. The note id keys
	// the notification so a re-fired note replaces its predecessor.
	ShowReminder(noteId int64, text string) error

	// RefreshSummary signals that the upcoming-reminder summary changed
	// and any widget display should re-query it. Best effort.
	RefreshSummary()
}

// MockPresenter records presentation calls for tests.
type MockPresenter struct {
	Shown     []ShownReminder
	Refreshes int
	// Err, when set, is returned from every ShowReminder call.
	Err error
}

// ShownReminder is a recorded ShowReminder call.
type ShownReminder struct {
	NoteId int64
	Text   string
}

func (m *MockPresenter) ShowReminder(noteId int64, text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Shown = append(m.Shown, ShownReminder{NoteId: noteId, Text: text})
	return nil
}

func (m *MockPresenter) RefreshSummary() {
	m.Refreshes++
}

var _ Presenter = (*MockPresenter)(nil)
