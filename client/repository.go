package client

import (
	"github.com/community-aid/helpboard-api/lifecycle"
	"github.com/community-aid/helpboard-api/schema"
)

// unknownAuthor is shown when the backend supplies no display name.
const unknownAuthor = "unknown"

const displayTimeFormat = "Jan 2, 2006 15:04"

// DisplayRequest is a help request prepared for rendering: the scheduled
// time formatted in local time, author labels filled in, and the actions
// available to the current user precomputed so views only query flags.
type DisplayRequest struct {
	ID        int64
	Task      string
	When      string
	Status    schema.ScheduleStatus
	Rating    *int
	Author    string
	Responder string
	OwnerID   int64

	CanRespond  bool
	CanCancel   bool
	CanDelete   bool
	CanComplete bool
	CanRate     bool
}

// Repository fetches the request board and keeps views consistent by
// re-fetching the full list after every mutation. There is no local
// patching; the reload is the consistency mechanism.
type Repository struct {
	client *Client
}

func NewRepository(client *Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) display(s *schema.Schedule) DisplayRequest {
	user := r.client.Session().CurrentUser().User()

	author := s.OwnerName
	if author == "" {
		author = unknownAuthor
	}

	responder := s.ResponderName
	if responder == "" && s.ResponderID != nil {
		responder = unknownAuthor
	}

	return DisplayRequest{
		ID:        s.ID,
		Task:      s.Task,
		When:      s.DateTime.Local().Format(displayTimeFormat),
		Status:    s.Status,
		Rating:    s.Rating,
		Author:    author,
		Responder: responder,
		OwnerID:   s.OwnerID,

		CanRespond:  lifecycle.CanRespond(user, s),
		CanCancel:   lifecycle.CanCancelResponse(user, s),
		CanDelete:   lifecycle.CanDelete(user, s),
		CanComplete: lifecycle.CanSetStatus(user, s, schema.StatusCompleted),
		CanRate:     lifecycle.CanRate(user, s),
	}
}

// List fetches every request and maps it for display.
func (r *Repository) List() ([]DisplayRequest, error) {
	schedules, err := r.client.ListSchedules()
	if err != nil {
		return nil, err
	}

	requests := make([]DisplayRequest, 0, len(schedules))
	for i := range schedules {
		requests = append(requests, r.display(&schedules[i]))
	}
	return requests, nil
}

// Get fetches a single request and maps it for display.
func (r *Repository) Get(id int64) (*DisplayRequest, error) {
	schedule, err := r.client.GetSchedule(id)
	if err != nil {
		return nil, err
	}
	d := r.display(schedule)
	return &d, nil
}

// Create posts a new request and returns the reloaded board.
func (r *Repository) Create(task, dateTime string) ([]DisplayRequest, error) {
	if err := r.client.CreateSchedule(task, dateTime); err != nil {
		return nil, err
	}
	return r.List()
}

// Respond takes an open request and returns the reloaded board.
func (r *Repository) Respond(id int64) ([]DisplayRequest, error) {
	if err := r.client.Respond(id); err != nil {
		return nil, err
	}
	return r.List()
}

// CancelResponse withdraws from a request and returns the reloaded board.
func (r *Repository) CancelResponse(id int64) ([]DisplayRequest, error) {
	if err := r.client.CancelResponse(id); err != nil {
		return nil, err
	}
	return r.List()
}

// SetStatus moves a request through its lifecycle and returns the
// reloaded board.
func (r *Repository) SetStatus(id int64, status schema.ScheduleStatus) ([]DisplayRequest, error) {
	if err := r.client.SetStatus(id, status); err != nil {
		return nil, err
	}
	return r.List()
}

// SetRating rates completed work and returns the reloaded board.
func (r *Repository) SetRating(id int64, rating int) ([]DisplayRequest, error) {
	if err := r.client.SetRating(id, rating); err != nil {
		return nil, err
	}
	return r.List()
}

// Delete removes a request and returns the reloaded board.
func (r *Repository) Delete(id int64) ([]DisplayRequest, error) {
	if err := r.client.DeleteSchedule(id); err != nil {
		return nil, err
	}
	return r.List()
}
