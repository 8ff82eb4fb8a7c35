package common

type UpdateType string

const (
	UPDATE_ATTACH   UpdateType = "attach"
	UPDATE_ADD      UpdateType = "add"
	UPDATE_EDIT     UpdateType = "edit"
	UPDATE_DELETE   UpdateType = "delete"
	UPDATE_RESTORE  UpdateType = "restore"
	UPDATE_GET      UpdateType = "get"
	UPDATE_LIST     UpdateType = "list"
	UPDATE_NEXT     UpdateType = "next"
	UPDATE_STOP     UpdateType = "stop"
	UPDATE_REMINDER UpdateType = "reminder"
	UPDATE_SUMMARY  UpdateType = "summary"
)

// ReminderAction describes a push update sent to attached clients
// when a reminder fires or the summary feed changes.
type ReminderAction string

const (
	ReminderFired   ReminderAction = "reminder_fired"
	ReminderSkipped ReminderAction = "reminder_skipped"
	SummaryRefresh  ReminderAction = "summary_refresh"
)

// TCPHost is the bind host used for the TCP fallback listener.
const TCPHost = "127.0.0.1"

// DefaultTCPPort is the TCP fallback port used when the socket transport
// is unavailable and no port override is configured.
const DefaultTCPPort = 4680

// MaxMessageSize caps a single framed message on the socket transport.
// Notes are short strings; anything larger indicates a corrupt or
// malicious frame header.
const MaxMessageSize = 1 << 20

// PipePath returns the Windows named pipe path used instead of a Unix
// socket.
func PipePath() string {
	return `\\.\pipe\noteping`
}
