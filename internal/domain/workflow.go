package domain

import "fmt"

// Action is a workflow transition request on an application or interview.
type Action string

const (
	// Application actions
	ActionWithdraw  Action = "withdraw"
	ActionReview    Action = "review"
	ActionShortlist Action = "shortlist"
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"

	// Interview actions
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"
	ActionCancel     Action = "cancel"
)

// Role identifies the actor's relation to the record being transitioned.
type Role string

const (
	RoleApplicant Role = "applicant"
	RolePoster    Role = "poster"
)

// InvalidTransitionError is returned when a status transition is not in
// the table for the given (current state, action, role).
type InvalidTransitionError struct {
	From   string
	Action Action
	Role   Role
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: action %q by %s from status %q", e.Action, e.Role, e.From)
}

// transition describes one row of the table: who may perform the action,
// which source states permit it (nil = any known state), and the resulting
// state.
type transition struct {
	role Role
	from map[string]bool
	next string
}

var applicationStatuses = map[string]bool{
	ApplicationStatusApplied:     true,
	ApplicationStatusReview:      true,
	ApplicationStatusShortlisted: true,
	ApplicationStatusAccepted:    true,
	ApplicationStatusRejected:    true,
	ApplicationStatusWithdrawn:   true,
}

var interviewStatuses = map[string]bool{
	InterviewStatusScheduled:   true,
	InterviewStatusRescheduled: true,
	InterviewStatusCompleted:   true,
	InterviewStatusCanceled:    true,
}

// The tables deliberately allow every action from every known source state,
// matching the historical behavior of the workflow: withdraw works from any
// state and is idempotent, and the poster may move an application to any
// status at any time. Tightening is a table edit, not a code change.
var applicationTransitions = map[Action]transition{
	ActionWithdraw:  {role: RoleApplicant, next: ApplicationStatusWithdrawn},
	ActionReview:    {role: RolePoster, next: ApplicationStatusReview},
	ActionShortlist: {role: RolePoster, next: ApplicationStatusShortlisted},
	ActionAccept:    {role: RolePoster, next: ApplicationStatusAccepted},
	ActionReject:    {role: RolePoster, next: ApplicationStatusRejected},
}

var interviewTransitions = map[Action]transition{
	ActionReschedule: {role: RolePoster, next: InterviewStatusRescheduled},
	ActionComplete:   {role: RolePoster, next: InterviewStatusCompleted},
	ActionCancel:     {role: RolePoster, next: InterviewStatusCanceled},
}

func nextStatus(table map[Action]transition, known map[string]bool, current string, act Action, role Role) (string, error) {
	t, ok := table[act]
	if !ok || !known[current] || t.role != role {
		return "", &InvalidTransitionError{From: current, Action: act, Role: role}
	}
	if t.from != nil && !t.from[current] {
		return "", &InvalidTransitionError{From: current, Action: act, Role: role}
	}
	return t.next, nil
}

// NextApplicationStatus resolves an application transition against the table.
func NextApplicationStatus(current string, act Action, role Role) (string, error) {
	return nextStatus(applicationTransitions, applicationStatuses, current, act, role)
}

// NextInterviewStatus resolves an interview transition against the table.
func NextInterviewStatus(current string, act Action, role Role) (string, error) {
	return nextStatus(interviewTransitions, interviewStatuses, current, act, role)
}
