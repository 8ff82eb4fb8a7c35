// Package perm models notification and precise-wakeup authorization.
// The scheduler and dispatcher consult an Oracle; the CLI drives a Flow
// when authorization is missing.
package perm

// Oracle answers the authorization questions the reminder core depends on.
// Implementations may query a real platform or be fixed for tests.
type Oracle interface {
	// NotificationsAllowed reports whether reminders may be presented.
	NotificationsAllowed() bool
	// PreciseTimersAllowed reports whether exact-time wake-ups may be armed.
	PreciseTimersAllowed() bool
}

// StaticOracle is an Oracle with fixed answers.
type StaticOracle struct {
	Notifications bool
	PreciseTimers bool
}

func (o StaticOracle) NotificationsAllowed() bool { return o.Notifications }
func (o StaticOracle) PreciseTimersAllowed() bool { return o.PreciseTimers }

// AllGranted returns an oracle that permits everything. Used by the daemon
// default configuration: the daemon owns its timers, so denial only occurs
// when an operator disables them explicitly.
func AllGranted() Oracle {
	return StaticOracle{Notifications: true, PreciseTimers: true}
}
