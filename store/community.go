package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/community-aid/helpboard-api/schema"
)

// helpboard main datastore
type CommunityCore interface {
	Ping() error

	// User
	CreateUser(email, number string, role schema.UserRole, passwordHash string) (*schema.User, error)
	GetUser(id int64) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)

	// Schedule
	CreateSchedule(ownerID int64, task string, dateTime time.Time) (*schema.Schedule, error)
	ListSchedules() ([]schema.Schedule, error)
	GetSchedule(id int64) (*schema.Schedule, error)
	RespondSchedule(helper *schema.User, scheduleID int64) error
	CancelResponse(helper *schema.User, scheduleID int64) error
	SetStatus(actor *schema.User, scheduleID int64, status schema.ScheduleStatus) error
	SetRating(actor *schema.User, scheduleID int64, rating int) error
	DeleteSchedule(actor *schema.User, scheduleID int64) error

	// Information
	GetInformation(userID int64) (*schema.Information, error)
	CreateInformation(userID int64, name string, age int) (*schema.Information, error)
	UpdateInformation(userID int64, name string, age int) (*schema.Information, error)
}

// CommunityStore is an implementation of CommunityCore
type CommunityStore struct {
	ormDB *gorm.DB
}

func NewCommunityStore(ormDB *gorm.DB) *CommunityStore {
	return &CommunityStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CommunityStore) Ping() error {
	return s.ormDB.DB().Ping()
}
