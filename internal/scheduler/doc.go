// Package scheduler owns the mapping from note ids to pending wake-ups.
// It enforces single-timer-per-note and past-time rejection, gates arming
// on the authorization oracle, and performs the recovery sweep that
// re-arms future reminders after a daemon restart. All operations are
// fire-and-forget: failures are reported to the operational log, never to
// the caller, because a missed reminder is degraded but non-fatal.
package scheduler
