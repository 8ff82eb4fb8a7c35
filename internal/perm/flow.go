package perm

import "errors"

// State is a step in the permission-request flow.
type State string

const (
	StateUnrequested    State = "unrequested"
	StateRationaleShown State = "rationale_shown"
	StateRequested      State = "requested"
	StateGranted        State = "granted"
	StateDenied         State = "denied"
)

// ErrFlowFinished is returned when Request is called after the flow
// already reached Granted.
var ErrFlowFinished = errors.New("permission flow already granted")

// Prompter performs the user-facing parts of the flow. Injectable so the
// flow is testable without a real platform.
type Prompter interface {
	// ShowRationale explains why the permission is needed. Returns true
	// if the user agreed to proceed to the actual request.
	ShowRationale(permission string) bool
	// RequestPermission performs the platform request. Returns true when
	// the permission was granted.
	RequestPermission(permission string) bool
}

// Flow walks a single permission through
// Unrequested -> RationaleShown -> Requested -> {Granted, Denied}.
// A Denied flow may be re-driven; Granted is terminal.
type Flow struct {
	permission string
	state      State
	prompter   Prompter
}

// NewFlow creates a flow for the named permission.
func NewFlow(permission string, p Prompter) *Flow {
	return &Flow{
		permission: permission,
		state:      StateUnrequested,
		prompter:   p,
	}
}

// State returns the flow's current state.
func (f *Flow) State() State {
	return f.state
}

// Granted reports whether the flow ended in a grant.
func (f *Flow) Granted() bool {
	return f.state == StateGranted
}

// Request drives the flow to a terminal state and reports the outcome.
// A denied flow restarts from the rationale on the next call.
func (f *Flow) Request() (bool, error) {
	switch f.state {
	case StateGranted:
		return true, ErrFlowFinished
	case StateUnrequested, StateDenied:
		f.state = StateRationaleShown
		if !f.prompter.ShowRationale(f.permission) {
			f.state = StateDenied
			return false, nil
		}
	}
	f.state = StateRequested
	if f.prompter.RequestPermission(f.permission) {
		f.state = StateGranted
		return true, nil
	}
	f.state = StateDenied
	return false, nil
}

// FlowOracle adapts two completed flows into an Oracle.
type FlowOracle struct {
	Notification *Flow
	PreciseTimer *Flow
}

func (o FlowOracle) NotificationsAllowed() bool {
	return o.Notification != nil && o.Notification.Granted()
}

func (o FlowOracle) PreciseTimersAllowed() bool {
	return o.PreciseTimer != nil && o.PreciseTimer.Granted()
}
