// Package submission holds the review workflow states of deadline-event
// submissions and the grading policy applied once a submission reaches a
// terminal state. State bookkeeping and score computation are kept apart:
// the workflow collaborator drives transitions, the grader only reads the
// final status.
package submission

import "fmt"

// Status is the review state of a submission.
type Status string

const (
	StatusPending            Status = "pending"
	StatusSupervisorReview   Status = "supervisor_review"
	StatusSupervisorApproved Status = "supervisor_approved"
	StatusSupervisorRejected Status = "supervisor_rejected"
	StatusAdminReview        Status = "admin_review"
	StatusAdminApproved      Status = "admin_approved"
	StatusAdminRejected      Status = "admin_rejected"
	StatusResubmitted        Status = "resubmitted"
)

// transitions is the allowed-transition table of the two-stage approval
// workflow. A supervisor approval forwards straight to admin review; a
// supervisor rejection can only be answered by a resubmission, which starts
// a new version back in supervisor review.
var transitions = map[Status][]Status{
	StatusPending:            {StatusSupervisorReview},
	StatusSupervisorReview:   {StatusSupervisorApproved, StatusSupervisorRejected},
	StatusSupervisorApproved: {StatusAdminReview},
	StatusSupervisorRejected: {StatusResubmitted},
	StatusAdminReview:        {StatusAdminApproved, StatusAdminRejected},
	StatusAdminApproved:      {},
	StatusAdminRejected:      {},
	StatusResubmitted:        {StatusSupervisorReview},
}

func (s Status) String() string { return string(s) }

// Valid reports whether s is a known workflow state.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition can occur. Rejected
// submissions may still be resubmitted, but that opens a new version;
// the rejected one stays rejected.
func (s Status) Terminal() bool {
	return s == StatusAdminApproved || s == StatusAdminRejected
}

// Approved reports whether the submission received final approval.
func (s Status) Approved() bool { return s == StatusAdminApproved }

// CanTransitionTo reports whether the workflow allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Transition validates and applies a state change, returning the new state.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("submission: invalid transition %s -> %s", s, next)
	}
	return next, nil
}
