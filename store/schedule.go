package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/community-aid/helpboard-api/lifecycle"
	"github.com/community-aid/helpboard-api/schema"
)

var (
	ErrCannotRespond    = fmt.Errorf("the request is either taken or not open for you")
	ErrNotResponder     = fmt.Errorf("you have not responded to this request")
	ErrNotOwner         = fmt.Errorf("only the owner may modify this request")
	ErrRatingNotAllowed = fmt.Errorf("a rating can only be set after the work is completed")
	ErrRatingOutOfRange = fmt.Errorf("rating must be between 1 and 5")
	ErrInvalidStatus    = fmt.Errorf("unknown status value")
)

// CreateSchedule posts a help request. The owner comes from the
// authenticated token, never from client input.
func (s *CommunityStore) CreateSchedule(ownerID int64, task string, dateTime time.Time) (*schema.Schedule, error) {
	schedule := schema.Schedule{
		Task:     task,
		DateTime: dateTime,
		OwnerID:  ownerID,
		Status:   schema.StatusOpen,
	}

	if err := s.ormDB.Create(&schedule).Error; err != nil {
		return nil, err
	}

	return &schedule, nil
}

// ListSchedules returns every help request with owner and responder
// display names attached.
func (s *CommunityStore) ListSchedules() ([]schema.Schedule, error) {
	schedules := []schema.Schedule{}
	if err := s.ormDB.Order("id").Find(&schedules).Error; err != nil {
		return nil, err
	}

	if err := s.attachNames(schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetSchedule returns a single help request with display names attached.
func (s *CommunityStore) GetSchedule(id int64) (*schema.Schedule, error) {
	var schedule schema.Schedule
	if err := s.ormDB.Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, err
	}

	rows := []schema.Schedule{schedule}
	if err := s.attachNames(rows); err != nil {
		return nil, err
	}

	return &rows[0], nil
}

// attachNames denormalizes user emails into the display-name fields.
func (s *CommunityStore) attachNames(schedules []schema.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(schedules)*2)
	for _, schedule := range schedules {
		ids = append(ids, schedule.OwnerID)
		if schedule.ResponderID != nil {
			ids = append(ids, *schedule.ResponderID)
		}
	}

	users := []schema.User{}
	if err := s.ormDB.Where("id IN (?)", ids).Find(&users).Error; err != nil {
		return err
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Email
	}

	for i := range schedules {
		schedules[i].OwnerName = names[schedules[i].OwnerID]
		if schedules[i].ResponderID != nil {
			schedules[i].ResponderName = names[*schedules[i].ResponderID]
		}
	}

	return nil
}

// RespondSchedule assigns a helper to an open request. The guard runs in a
// single statement so two helpers racing for the same request resolve in
// the database: the loser's update matches no row and is rejected.
func (s *CommunityStore) RespondSchedule(helper *schema.User, scheduleID int64) error {
	result := s.ormDB.Model(schema.Schedule{}).
		Where("id = ? AND owner_id != ? AND status = ? AND responder_id IS NULL",
			scheduleID, helper.ID, schema.StatusOpen).
		Updates(map[string]interface{}{
			"status":       schema.StatusInProgress,
			"responder_id": helper.ID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCannotRespond
	}

	return nil
}

// CancelResponse withdraws the calling helper from a request, reverting
// it to OPEN. Only the assigned responder may cancel, and only before the
// request reaches a terminal state.
func (s *CommunityStore) CancelResponse(helper *schema.User, scheduleID int64) error {
	result := s.ormDB.Model(schema.Schedule{}).
		Where("id = ? AND responder_id = ? AND status NOT IN (?)",
			scheduleID, helper.ID, []schema.ScheduleStatus{schema.StatusCompleted, schema.StatusCancelled}).
		Updates(map[string]interface{}{
			"status":       schema.StatusOpen,
			"responder_id": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotResponder
	}

	return nil
}

// SetStatus moves a request through the lifecycle state machine. A
// transition into COMPLETED credits the responder's help count.
func (s *CommunityStore) SetStatus(actor *schema.User, scheduleID int64, status schema.ScheduleStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	var schedule schema.Schedule
	if err := s.ormDB.Where("id = ?", scheduleID).First(&schedule).Error; err != nil {
		return err
	}

	if err := lifecycle.Transition(schedule.Status, status); err != nil {
		return err
	}

	// IN_PROGRESS -> OPEN passes the transition table but is the
	// responder's withdraw path; applied here it would leave an OPEN
	// request still carrying a responder
	if status == schema.StatusOpen {
		return fmt.Errorf("%w: %s -> %s", lifecycle.ErrInvalidTransition, schedule.Status, status)
	}

	if !lifecycle.CanSetStatus(actor, &schedule, status) {
		return ErrNotOwner
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// re-check the status read above in the WHERE clause so two racing
	// updates resolve in the database: the loser matches no row
	result := tx.Model(schema.Schedule{}).
		Where("id = ? AND status = ?", scheduleID, schedule.Status).
		Update("status", status)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("%w: %s -> %s", lifecycle.ErrInvalidTransition, schedule.Status, status)
	}

	if status == schema.StatusCompleted && schedule.ResponderID != nil {
		// responders without a saved profile simply accrue nothing
		if err := tx.Model(schema.Information{}).
			Where("user_id = ?", *schedule.ResponderID).
			Update("count_helps", gorm.Expr("count_helps + 1")).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// SetRating records the owner's rating for completed work.
func (s *CommunityStore) SetRating(actor *schema.User, scheduleID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}

	var schedule schema.Schedule
	if err := s.ormDB.Where("id = ?", scheduleID).First(&schedule).Error; err != nil {
		return err
	}

	if schedule.Status != schema.StatusCompleted {
		return ErrRatingNotAllowed
	}

	if !lifecycle.CanRate(actor, &schedule) {
		return ErrNotOwner
	}

	return s.ormDB.Model(schema.Schedule{}).Where("id = ?", scheduleID).
		Update("rating", rating).Error
}

// DeleteSchedule removes a request permanently. Owner-only; there is no
// status guard, deletion is allowed at any lifecycle state.
func (s *CommunityStore) DeleteSchedule(actor *schema.User, scheduleID int64) error {
	var schedule schema.Schedule
	if err := s.ormDB.Where("id = ?", scheduleID).First(&schedule).Error; err != nil {
		return err
	}

	if !lifecycle.CanDelete(actor, &schedule) {
		return ErrNotOwner
	}

	return s.ormDB.Delete(schema.Schedule{}, "id = ?", scheduleID).Error
}
