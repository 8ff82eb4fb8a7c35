package pingcli

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
)

// Handler defines the interface for processing daemon updates.
// Implementations receive raw JSON messages and are responsible for
// unmarshaling and processing them appropriately.
type Handler interface {
	Handle(json.RawMessage) error
}

// NewReminderHandler creates a handler for reminder push updates. The
// action parameter filters updates to only those matching the specified
// reminder action; pass an empty string to receive all actions. The
// callback is invoked for each matching update.
func NewReminderHandler(action common.ReminderAction, callback func(*common.ReminderUpdate) error) *ReminderHandler {
	return &ReminderHandler{
		Action:   action,
		Callback: callback,
	}
}

// ReminderHandler processes reminder push updates from the daemon.
// It filters updates by action type and invokes a callback for matching
// updates.
type ReminderHandler struct {
	Action   common.ReminderAction
	Callback func(*common.ReminderUpdate) error
}

// Handle processes a raw JSON reminder update message.
func (h *ReminderHandler) Handle(m json.RawMessage) error {
	var v common.ReminderUpdate
	err := json.Unmarshal(m, &v)
	if err != nil {
		return err
	}
	if h.Action != "" && v.Action != h.Action {
		return nil
	}
	return h.Callback(&v)
}
