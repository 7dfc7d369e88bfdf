package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/community-aid/helpboard-api/lifecycle"
	"github.com/community-aid/helpboard-api/schema"
	"github.com/community-aid/helpboard-api/store"
)

func scheduleIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return id, true
}

// getAllSchedule returns every help request on the board.
func (s *Server) getAllSchedule(c *gin.Context) {
	schedules, err := s.store.ListSchedules()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// getScheduleByID returns a single help request.
func (s *Server) getScheduleByID(c *gin.Context) {
	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	schedule, err := s.store.GetSchedule(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorScheduleNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// createSchedule is the API for posting a help request. The owner is
// bound from the authenticated token; any ownerId in the body is ignored.
func (s *Server) createSchedule(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Task     string `json:"task"`
		DateTime string `json:"dateTime"`
		OwnerID  int64  `json:"ownerId"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Task == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	dateTime, err := time.Parse(time.RFC3339, params.DateTime)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.store.CreateSchedule(user.ID, params.Task, dateTime); shouldInterupt(err, c) {
		return
	}

	c.String(http.StatusOK, "Schedule created")
}

// respond is the API for a helper to take an open request.
func (s *Server) respond(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := s.store.RespondSchedule(user, id); err != nil {
		if err == store.ErrCannotRespond {
			abortWithEncoding(c, http.StatusNotFound, errorCannotRespond, err)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	c.String(http.StatusOK, "You have responded to this request")
}

// cancelResponse is the API for the assigned helper to withdraw,
// reopening the request.
func (s *Server) cancelResponse(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := s.store.CancelResponse(user, id); err != nil {
		if err == store.ErrNotResponder {
			abortWithEncoding(c, http.StatusForbidden, errorNotResponder, err)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	c.String(http.StatusOK, "You have cancelled your response")
}

// setStatus moves a request through its lifecycle.
func (s *Server) setStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		ID     int64                 `json:"id"`
		Status schema.ScheduleStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.SetStatus(user, params.ID, params.Status); err != nil {
		switch {
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorScheduleNotFound)
		case errors.Is(err, lifecycle.ErrInvalidTransition), err == store.ErrInvalidStatus:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition, err)
		case err == store.ErrNotOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotOwner, err)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.String(http.StatusOK, "Status updated")
}

// setRating records the owner's rating for completed work.
func (s *Server) setRating(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		ID     int64 `json:"id"`
		Rating int   `json:"rating"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.SetRating(user, params.ID, params.Rating); err != nil {
		switch err {
		case store.ErrRatingOutOfRange:
			abortWithEncoding(c, http.StatusBadRequest, errorRatingOutOfRange, err)
		case store.ErrRatingNotAllowed:
			abortWithEncoding(c, http.StatusBadRequest, errorRatingNotAllowed, err)
		case store.ErrNotOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotOwner, err)
		default:
			if gorm.IsRecordNotFoundError(err) {
				abortWithEncoding(c, http.StatusNotFound, errorScheduleNotFound)
				return
			}
			shouldInterupt(err, c)
		}
		return
	}

	c.String(http.StatusOK, "Rating updated")
}

// deleteSchedule removes a request. Owner-only; deletion carries no
// status guard.
func (s *Server) deleteSchedule(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := s.store.DeleteSchedule(user, id); err != nil {
		switch {
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorScheduleNotFound)
		case err == store.ErrNotOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotOwner, err)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.String(http.StatusOK, "Schedule deleted")
}
