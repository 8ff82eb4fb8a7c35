// Package alarm provides the keyed one-shot timer facility backing note
// reminders. A single background goroutine owns a min-heap of pending
// wake-ups and sleeps until the earliest trigger time; arming a key that
// already holds a pending wake-up supersedes it, so at most one wake-up
// exists per key at any time.
package alarm
