package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/community-aid/helpboard-api/schema"
)

func int64p(v int64) *int64 { return &v }

func needy(id int64) *schema.User {
	return &schema.User{ID: id, Role: schema.RoleNeedy}
}

func helper(id int64) *schema.User {
	return &schema.User{ID: id, Role: schema.RoleHelper}
}

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to schema.ScheduleStatus }{
		{schema.StatusOpen, schema.StatusInProgress},
		{schema.StatusInProgress, schema.StatusOpen},
		{schema.StatusInProgress, schema.StatusCompleted},
		{schema.StatusInProgress, schema.StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, ValidTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
		assert.NoError(t, Transition(tc.from, tc.to))
	}

	statuses := []schema.ScheduleStatus{
		schema.StatusOpen, schema.StatusInProgress, schema.StatusCompleted, schema.StatusCancelled,
	}

	// terminal states have no outgoing edges
	for _, terminal := range []schema.ScheduleStatus{schema.StatusCompleted, schema.StatusCancelled} {
		for _, to := range statuses {
			assert.False(t, ValidTransition(terminal, to), "%s -> %s should be rejected", terminal, to)
			assert.Error(t, Transition(terminal, to))
		}
	}

	// OPEN may only move forward to IN_PROGRESS
	assert.False(t, ValidTransition(schema.StatusOpen, schema.StatusCompleted))
	assert.False(t, ValidTransition(schema.StatusOpen, schema.StatusCancelled))
	assert.False(t, ValidTransition(schema.StatusOpen, schema.StatusOpen))
}

func TestCanRespond(t *testing.T) {
	open := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusOpen}

	assert.True(t, CanRespond(helper(20), open))
	assert.False(t, CanRespond(needy(20), open), "only helpers respond")
	assert.False(t, CanRespond(helper(10), &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusOpen}),
		"owner cannot respond to own request")
	assert.False(t, CanRespond(nil, open))
	assert.False(t, CanRespond(helper(20), nil))

	// a non-OPEN request is rejected even when the responder happens to be unset
	for _, st := range []schema.ScheduleStatus{schema.StatusInProgress, schema.StatusCompleted, schema.StatusCancelled} {
		assert.False(t, CanRespond(helper(20), &schema.Schedule{ID: 1, OwnerID: 10, Status: st}),
			"respond on %s should be rejected", st)
	}

	taken := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusOpen, ResponderID: int64p(30)}
	assert.False(t, CanRespond(helper(20), taken))
}

func TestCanCancelResponse(t *testing.T) {
	inProgress := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusInProgress, ResponderID: int64p(20)}

	assert.True(t, CanCancelResponse(helper(20), inProgress))
	assert.False(t, CanCancelResponse(helper(21), inProgress), "only the assigned responder cancels")
	assert.False(t, CanCancelResponse(needy(20), inProgress))

	for _, st := range []schema.ScheduleStatus{schema.StatusCompleted, schema.StatusCancelled} {
		done := &schema.Schedule{ID: 1, OwnerID: 10, Status: st, ResponderID: int64p(20)}
		assert.False(t, CanCancelResponse(helper(20), done), "cancel on %s should be rejected", st)
	}

	open := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusOpen}
	assert.False(t, CanCancelResponse(helper(20), open), "nothing to cancel on an unassigned request")
}

// CanRespond and CanCancelResponse are mutually exclusive for every
// (user, request) pair: responding needs an unassigned request, cancelling
// needs the caller assigned.
func TestRespondCancelExclusive(t *testing.T) {
	users := []*schema.User{needy(10), helper(20), helper(30), {ID: 40, Role: schema.RoleAdmin}}
	responders := []*int64{nil, int64p(20), int64p(30)}
	statuses := []schema.ScheduleStatus{
		schema.StatusOpen, schema.StatusInProgress, schema.StatusCompleted, schema.StatusCancelled,
	}

	for _, u := range users {
		for _, r := range responders {
			for _, st := range statuses {
				s := &schema.Schedule{ID: 1, OwnerID: 10, Status: st, ResponderID: r}
				assert.False(t, CanRespond(u, s) && CanCancelResponse(u, s),
					"user %d, status %s, responder %v", u.ID, st, r)
			}
		}
	}
}

func TestCanDelete(t *testing.T) {
	for _, st := range []schema.ScheduleStatus{
		schema.StatusOpen, schema.StatusInProgress, schema.StatusCompleted, schema.StatusCancelled,
	} {
		s := &schema.Schedule{ID: 1, OwnerID: 10, Status: st}
		assert.True(t, CanDelete(needy(10), s), "owner may delete a %s request", st)
		assert.False(t, CanDelete(needy(11), s), "non-owner may not delete")
		assert.False(t, CanDelete(helper(10), s), "helpers may not delete")
		assert.False(t, CanDelete(&schema.User{ID: 40, Role: schema.RoleAdmin}, s), "deletion is owner-only")
	}
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(needy(10)))
	assert.False(t, CanCreate(helper(20)))
	assert.False(t, CanCreate(&schema.User{ID: 40, Role: schema.RoleAdmin}))
	assert.False(t, CanCreate(nil))
}

func TestCanSetStatus(t *testing.T) {
	inProgress := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusInProgress, ResponderID: int64p(20)}
	admin := &schema.User{ID: 40, Role: schema.RoleAdmin}

	assert.True(t, CanSetStatus(needy(10), inProgress, schema.StatusCompleted))
	assert.True(t, CanSetStatus(needy(10), inProgress, schema.StatusCancelled))
	assert.True(t, CanSetStatus(admin, inProgress, schema.StatusCancelled))
	assert.False(t, CanSetStatus(needy(11), inProgress, schema.StatusCompleted), "non-owner")
	assert.False(t, CanSetStatus(helper(20), inProgress, schema.StatusCompleted), "responder completes nothing")

	completed := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusCompleted}
	assert.False(t, CanSetStatus(needy(10), completed, schema.StatusOpen), "terminal state")
	assert.False(t, CanSetStatus(admin, completed, schema.StatusCancelled), "terminal state, even for admin")
}

// An OPEN request never carries a responder. A status edit back to OPEN
// would break that: the transition table allows IN_PROGRESS -> OPEN, but
// only the responder's withdraw walks it, because that path also clears
// the assignment.
func TestSetStatusCannotReopen(t *testing.T) {
	inProgress := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusInProgress, ResponderID: int64p(20)}
	admin := &schema.User{ID: 40, Role: schema.RoleAdmin}

	assert.True(t, ValidTransition(schema.StatusInProgress, schema.StatusOpen))
	assert.False(t, CanSetStatus(needy(10), inProgress, schema.StatusOpen), "owner cannot revert to OPEN")
	assert.False(t, CanSetStatus(admin, inProgress, schema.StatusOpen), "admin cannot revert to OPEN")
	assert.False(t, CanSetStatus(helper(20), inProgress, schema.StatusOpen), "responder withdraws instead")

	assert.True(t, CanCancelResponse(helper(20), inProgress), "the withdraw path stays available")
}

func TestCanRate(t *testing.T) {
	completed := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusCompleted, ResponderID: int64p(20)}
	assert.True(t, CanRate(needy(10), completed))
	assert.False(t, CanRate(needy(11), completed))
	assert.False(t, CanRate(helper(20), completed))
	assert.False(t, CanRate(&schema.User{ID: 40, Role: schema.RoleAdmin}, completed), "rating is owner-only")

	inProgress := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusInProgress}
	assert.False(t, CanRate(needy(10), inProgress), "rating requires completion")
}

// A helper withdrawing reopens the request for someone else: after the
// IN_PROGRESS -> OPEN edge clears the responder, a second helper passes
// CanRespond again.
func TestCancelReopens(t *testing.T) {
	s := &schema.Schedule{ID: 1, OwnerID: 10, Status: schema.StatusOpen}

	assert.True(t, CanRespond(helper(20), s))
	s.Status = schema.StatusInProgress
	s.ResponderID = int64p(20)

	assert.True(t, CanCancelResponse(helper(20), s))
	assert.NoError(t, Transition(s.Status, schema.StatusOpen))
	s.Status = schema.StatusOpen
	s.ResponderID = nil

	assert.True(t, CanRespond(helper(30), s))
}
