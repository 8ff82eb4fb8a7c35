package notify

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/noteping/noteping/internal/perm"
	"github.com/noteping/noteping/pkg/logger"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = "org.freedesktop.Notifications.Notify"
	notifyAppName   = "noteping"
	notifyTitle     = "Note reminder"
	notifyNoExpiry  = int32(-1)
	urgencyCritical = byte(2)
)

// ErrNotAuthorized is returned when the notification permission is absent
// at presentation time (revoked between arming and firing).
var ErrNotAuthorized = errors.New("notification permission not granted")

// DBusPresenter shows reminders through the freedesktop notification
// service on the session bus.
type DBusPresenter struct {
	log   logger.Logger
	conn  *dbus.Conn
	perms perm.Oracle
	// onSummary, when set, is invoked by RefreshSummary; the daemon wires
	// it to the push broadcast for attached clients.
	onSummary func()
}

// NewDBusPresenter connects to the session bus.
func NewDBusPresenter(l logger.Logger, perms perm.Oracle, onSummary func()) (*DBusPresenter, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("error connecting to session bus: %w", err)
	}
	return &DBusPresenter{
		log:       l,
		conn:      conn,
		perms:     perms,
		onSummary: onSummary,
	}, nil
}

// ShowReminder posts a desktop notification carrying the note's text.
// The note id doubles as the replaces-id so a re-fired note updates its
// existing notification instead of stacking a new one.
func (p *DBusPresenter) ShowReminder(noteId int64, text string) error {
	if !p.perms.NotificationsAllowed() {
		return ErrNotAuthorized
	}
	obj := p.conn.Object(notifyService, notifyPath)
	call := obj.Call(notifyMethod, 0,
		notifyAppName,
		uint32(noteId),
		"",          // app icon
		notifyTitle,
		text,
		[]string{},  // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(urgencyCritical),
		},
		notifyNoExpiry,
	)
	if call.Err != nil {
		return fmt.Errorf("error posting notification for note %d: %w", noteId, call.Err)
	}
	p.log.Info("notify: posted reminder notification for note %d", noteId)
	return nil
}

// RefreshSummary forwards the refresh signal to the wired broadcast hook.
func (p *DBusPresenter) RefreshSummary() {
	if p.onSummary != nil {
		p.onSummary()
	}
}

// Close releases the session bus connection.
func (p *DBusPresenter) Close() error {
	return p.conn.Close()
}

var _ Presenter = (*DBusPresenter)(nil)
