package schema

import (
	"time"
)

// UserRole determines which board operations an account may perform.
type UserRole string

const (
	RoleNeedy  UserRole = "NEEDY"
	RoleHelper UserRole = "HELPER"
	RoleAdmin  UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known board roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleNeedy, RoleHelper, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int64     `json:"id" gorm:"primary_key"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Number    string    `json:"number" gorm:"unique;not null"`
	Role      UserRole  `json:"userType" gorm:"column:user_type;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
