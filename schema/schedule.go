package schema

import (
	"time"
)

// ScheduleStatus is the lifecycle state of a help request.
type ScheduleStatus string

const (
	StatusOpen       ScheduleStatus = "OPEN"
	StatusInProgress ScheduleStatus = "IN_PROGRESS"
	StatusCompleted  ScheduleStatus = "COMPLETED"
	StatusCancelled  ScheduleStatus = "CANCELLED"
)

// Valid reports whether the status is one of the four lifecycle states.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave the status.
func (s ScheduleStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Schedule is a posted help request. The owner is the needy account that
// created it; the responder is the helper currently assigned, if any.
// OwnerName and ResponderName are denormalized from user emails at read
// time and never written back.
type Schedule struct {
	ID            int64          `json:"id" gorm:"primary_key"`
	Task          string         `json:"task" gorm:"not null"`
	DateTime      time.Time      `json:"dateTime" gorm:"not null"`
	Rating        *int           `json:"rating,omitempty"`
	Status        ScheduleStatus `json:"status" gorm:"not null;default:'OPEN'"`
	OwnerID       int64          `json:"ownerId" gorm:"not null"`
	ResponderID   *int64         `json:"responderId,omitempty"`
	OwnerName     string         `json:"ownerName,omitempty" gorm:"-"`
	ResponderName string         `json:"responderName,omitempty" gorm:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedule"
}
