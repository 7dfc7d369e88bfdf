// Package lifecycle holds the pure decision rules of the help-request
// state machine. The store re-validates every transition with these rules
// so the database stays the source of truth; the client queries the same
// rules to decide which controls to offer. Nothing here performs I/O.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/community-aid/helpboard-api/schema"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions lists every allowed status change. Terminal states have no
// outgoing edges; the only backward edge is the responder-cancel path
// IN_PROGRESS -> OPEN, which also clears the responder.
var transitions = map[schema.ScheduleStatus][]schema.ScheduleStatus{
	schema.StatusOpen:       {schema.StatusInProgress},
	schema.StatusInProgress: {schema.StatusOpen, schema.StatusCompleted, schema.StatusCancelled},
}

// ValidTransition reports whether a schedule may move from one status to
// another.
func ValidTransition(from, to schema.ScheduleStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns ErrInvalidTransition (wrapped with both states) when
// the change is not allowed.
func Transition(from, to schema.ScheduleStatus) error {
	if !ValidTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// CanCreate reports whether the user may post a new help request.
func CanCreate(user *schema.User) bool {
	return user != nil && user.Role == schema.RoleNeedy
}

// CanRespond reports whether the user may take the request. Responding
// requires an OPEN request with no responder assigned; the status check
// alone is not enough since a rejected cancel may leave a stale view.
func CanRespond(user *schema.User, s *schema.Schedule) bool {
	if user == nil || s == nil {
		return false
	}
	return user.Role == schema.RoleHelper &&
		s.Status == schema.StatusOpen &&
		s.ResponderID == nil &&
		s.OwnerID != user.ID
}

// CanCancelResponse reports whether the user may withdraw from the
// request. Only the current responder may cancel, and only before the
// request reaches a terminal state.
func CanCancelResponse(user *schema.User, s *schema.Schedule) bool {
	if user == nil || s == nil {
		return false
	}
	return user.Role == schema.RoleHelper &&
		s.ResponderID != nil && *s.ResponderID == user.ID &&
		!s.Status.Terminal()
}

// CanDelete reports whether the user may delete the request. Deletion is
// owner-only with no status guard, matching the backend of record.
func CanDelete(user *schema.User, s *schema.Schedule) bool {
	if user == nil || s == nil {
		return false
	}
	return user.Role == schema.RoleNeedy && s.OwnerID == user.ID
}

// CanSetStatus reports whether the user may move the request to the given
// status. Owners drive completion and cancellation; admins may do the
// same on any request. Reverting to OPEN is not a status edit: the only
// way back is the responder withdrawing through CanCancelResponse, which
// also clears the assignment. A status-only revert would leave an OPEN
// request still carrying a responder.
func CanSetStatus(user *schema.User, s *schema.Schedule, to schema.ScheduleStatus) bool {
	if user == nil || s == nil {
		return false
	}
	if !ValidTransition(s.Status, to) {
		return false
	}
	if to == schema.StatusOpen {
		return false
	}
	if user.Role == schema.RoleAdmin {
		return true
	}
	return user.Role == schema.RoleNeedy && s.OwnerID == user.ID
}

// CanRate reports whether the user may rate the request. Ratings are set
// by the owner once the work is completed.
func CanRate(user *schema.User, s *schema.Schedule) bool {
	if user == nil || s == nil {
		return false
	}
	return user.Role == schema.RoleNeedy &&
		s.OwnerID == user.ID &&
		s.Status == schema.StatusCompleted
}
