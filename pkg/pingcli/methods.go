package pingcli

import (
	"encoding/json"

	"github.com/noteping/noteping/common"
)

func invoke[T any](c *Client, method common.UpdateType, message any) (*T, error) {
	resp, err := c.invoke(method, message)
	if err != nil {
		return nil, err
	}
	var d T
	return &d, json.Unmarshal(resp, &d)
}

// AddNote saves a new note. A non-nil dueAt (epoch milliseconds) arms a
// reminder; noRemind saves the note without one.
func (c *Client) AddNote(text string, dueAt *int64, noRemind bool) (*common.AddResponse, error) {
	return invoke[common.AddResponse](c, common.UPDATE_ADD, &common.AddParams{
		Text:     text,
		DueAt:    dueAt,
		NoRemind: noRemind,
	})
}

// EditNote rewrites a note's text and due time.
func (c *Client) EditNote(id int64, text string, dueAt *int64, noRemind bool) (*common.EditResponse, error) {
	return invoke[common.EditResponse](c, common.UPDATE_EDIT, &common.EditParams{
		Id:       id,
		Text:     text,
		DueAt:    dueAt,
		NoRemind: noRemind,
	})
}

// DeleteNote removes a note and releases its reminder.
func (c *Client) DeleteNote(id int64) (bool, error) {
	_, err := c.invoke(common.UPDATE_DELETE, &common.DeleteParams{Id: id})
	return err == nil, err
}

// RestoreNote re-inserts a previously deleted note.
func (c *Client) RestoreNote(note common.NoteInfo) (*common.RestoreResponse, error) {
	return invoke[common.RestoreResponse](c, common.UPDATE_RESTORE, &common.RestoreParams{Note: note})
}

// GetNote returns a single note by id.
func (c *Client) GetNote(id int64) (*common.GetResponse, error) {
	return invoke[common.GetResponse](c, common.UPDATE_GET, &common.GetParams{Id: id})
}

// ListNotes returns all notes; dueOnly restricts to notes with a due time.
func (c *Client) ListNotes(dueOnly bool) (*common.ListResponse, error) {
	return invoke[common.ListResponse](c, common.UPDATE_LIST, &common.ListParams{DueOnly: dueOnly})
}

// NextNote returns the earliest upcoming note strictly after the given
// moment (epoch milliseconds; zero means now).
func (c *Client) NextNote(after int64) (*common.NextResponse, error) {
	return invoke[common.NextResponse](c, common.UPDATE_NEXT, &common.NextParams{After: after})
}

// Attach subscribes this connection to push updates. Follow with Listen.
func (c *Client) Attach() (*common.AttachResponse, error) {
	return invoke[common.AttachResponse](c, common.UPDATE_ATTACH, nil)
}

// StopDaemon asks the daemon to shut down.
func (c *Client) StopDaemon() (*common.StopResponse, error) {
	return invoke[common.StopResponse](c, common.UPDATE_STOP, nil)
}
