package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/community-aid/helpboard-api/api/mocks"
	"github.com/community-aid/helpboard-api/lifecycle"
	"github.com/community-aid/helpboard-api/schema"
	"github.com/community-aid/helpboard-api/store"
)

// testRouter wires the recognize middleware with a fixed token identity,
// the way the auth middleware would after validating a bearer token.
func testRouter(s *Server, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
	})
	router.Use(s.recognizeUserMiddleware())
	return router
}

func expectUser(m *mocks.MockCommunityCore, u *schema.User) {
	m.EXPECT().GetUser(u.ID).Return(u, nil).AnyTimes()
}

func TestGetAllSchedule(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	helper := &schema.User{ID: 20, Email: "helper@example.com", Role: schema.RoleHelper}
	expectUser(m, helper)

	responderID := int64(20)
	m.EXPECT().ListSchedules().Return([]schema.Schedule{
		{ID: 1, Task: "carry groceries", Status: schema.StatusOpen, OwnerID: 10, OwnerName: "needy@example.com"},
		{ID: 2, Task: "walk the dog", Status: schema.StatusInProgress, OwnerID: 10, ResponderID: &responderID},
	}, nil).Times(1)

	router := testRouter(&s, 20)
	router.GET("/Schedule/getAllSchedule", s.getAllSchedule)

	req := httptest.NewRequest("GET", "/Schedule/getAllSchedule", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp, 2)
	assert.Equal(t, "carry groceries", resp[0]["task"])
	assert.Equal(t, "OPEN", resp[0]["status"])
	assert.NotContains(t, resp[0], "responderId", "open request has no responder")
	assert.Equal(t, float64(20), resp[1]["responderId"])
}

func TestCreateScheduleBindsOwnerFromToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Email: "needy@example.com", Role: schema.RoleNeedy}
	expectUser(m, needy)

	// the ownerId in the body is a different user and must be ignored
	m.EXPECT().CreateSchedule(int64(10), "carry groceries", gomock.Any()).
		Return(&schema.Schedule{ID: 1}, nil).Times(1)

	router := testRouter(&s, 10)
	router.POST("/needy/createSchedule", s.createSchedule)

	body := `{"task":"carry groceries","dateTime":"2031-05-01T10:00:00Z","ownerId":99}`
	req := httptest.NewRequest("POST", "/needy/createSchedule", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Schedule created", w.Body.String())
}

func TestCreateScheduleRejectsBadDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Role: schema.RoleNeedy}
	expectUser(m, needy)

	router := testRouter(&s, 10)
	router.POST("/needy/createSchedule", s.createSchedule)

	body := `{"task":"carry groceries","dateTime":"tomorrow-ish"}`
	req := httptest.NewRequest("POST", "/needy/createSchedule", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespond(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	helper := &schema.User{ID: 20, Role: schema.RoleHelper}
	expectUser(m, helper)

	m.EXPECT().RespondSchedule(helper, int64(1)).Return(nil).Times(1)

	router := testRouter(&s, 20)
	router.PATCH("/helper/respond/:id", s.respond)

	req := httptest.NewRequest("PATCH", "/helper/respond/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You have responded to this request", w.Body.String())
}

// A second respond on the same request reports a rejection rather than
// mutating state further.
func TestRespondTwiceReportsRejection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	helper := &schema.User{ID: 20, Role: schema.RoleHelper}
	expectUser(m, helper)

	first := m.EXPECT().RespondSchedule(helper, int64(1)).Return(nil)
	m.EXPECT().RespondSchedule(helper, int64(1)).Return(store.ErrCannotRespond).After(first)

	router := testRouter(&s, 20)
	router.PATCH("/helper/respond/:id", s.respond)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/helper/respond/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/helper/respond/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1200), resp.Code)
}

func TestCancelResponseNotResponder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	helper := &schema.User{ID: 21, Role: schema.RoleHelper}
	expectUser(m, helper)

	m.EXPECT().CancelResponse(helper, int64(1)).Return(store.ErrNotResponder).Times(1)

	router := testRouter(&s, 21)
	router.PATCH("/helper/cancelResponse/:id", s.cancelResponse)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/helper/cancelResponse/1", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1201), resp.Code)
}

func TestSetStatusInvalidTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Role: schema.RoleNeedy}
	expectUser(m, needy)

	m.EXPECT().SetStatus(needy, int64(1), schema.StatusOpen).
		Return(lifecycle.Transition(schema.StatusCompleted, schema.StatusOpen)).Times(1)

	router := testRouter(&s, 10)
	router.PATCH("/needy/setStatus", s.setStatus)

	body := `{"id":1,"status":"OPEN"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/needy/setStatus", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1203), resp.Code)
}

// A status edit back to OPEN is rejected: reverting is the responder's
// withdraw path, which also clears the assignment.
func TestSetStatusReopenRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Role: schema.RoleNeedy}
	expectUser(m, needy)

	m.EXPECT().SetStatus(needy, int64(1), schema.StatusOpen).
		Return(fmt.Errorf("%w: %s -> %s", lifecycle.ErrInvalidTransition,
			schema.StatusInProgress, schema.StatusOpen)).Times(1)

	router := testRouter(&s, 10)
	router.PATCH("/needy/setStatus", s.setStatus)

	body := `{"id":1,"status":"OPEN"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/needy/setStatus", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1203), resp.Code)
}

// Two completions racing on the same request: the first applies, the
// second matches no row in the store's guarded update and reports a
// rejection instead of double-crediting the responder.
func TestSetStatusCompleteTwiceReportsRejection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Role: schema.RoleNeedy}
	expectUser(m, needy)

	first := m.EXPECT().SetStatus(needy, int64(1), schema.StatusCompleted).Return(nil)
	m.EXPECT().SetStatus(needy, int64(1), schema.StatusCompleted).
		Return(fmt.Errorf("%w: %s -> %s", lifecycle.ErrInvalidTransition,
			schema.StatusInProgress, schema.StatusCompleted)).After(first)

	router := testRouter(&s, 10)
	router.PATCH("/needy/setStatus", s.setStatus)

	body := `{"id":1,"status":"COMPLETED"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/needy/setStatus", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/needy/setStatus", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1203), resp.Code)
}

// A helper never reaches the needy-only delete handler: the role gate
// rejects the call before any store access.
func TestDeleteScheduleRoleGate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	helper := &schema.User{ID: 20, Role: schema.RoleHelper}
	expectUser(m, helper)

	router := testRouter(&s, 20)
	router.DELETE("/needy/deleteSchedule/:id",
		s.requireRole(schema.RoleNeedy, schema.RoleAdmin), s.deleteSchedule)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/needy/deleteSchedule/1", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1102), resp.Code)
}

func TestDeleteScheduleNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 11, Role: schema.RoleNeedy}
	expectUser(m, needy)

	m.EXPECT().DeleteSchedule(needy, int64(1)).Return(store.ErrNotOwner).Times(1)

	router := testRouter(&s, 11)
	router.DELETE("/needy/deleteSchedule/:id", s.deleteSchedule)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/needy/deleteSchedule/1", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetRatingOutOfRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityCore(ctl)
	s := Server{store: m}

	needy := &schema.User{ID: 10, Role: schema.RoleNeedy}
	expectUser(m, needy)

	m.EXPECT().SetRating(needy, int64(1), 6).Return(store.ErrRatingOutOfRange).Times(1)

	router := testRouter(&s, 10)
	router.PATCH("/needy/setRating", s.setRating)

	body := `{"id":1,"rating":6}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PATCH", "/needy/setRating", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
