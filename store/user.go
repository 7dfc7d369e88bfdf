package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/community-aid/helpboard-api/schema"
)

var (
	ErrEmailTaken  = fmt.Errorf("email is already taken")
	ErrNumberTaken = fmt.Errorf("phone number is already in use")
)

// CreateUser registers an account on the board. Email and phone number
// are unique across accounts; the password arrives already hashed.
func (s *CommunityStore) CreateUser(email, number string, role schema.UserRole, passwordHash string) (*schema.User, error) {
	var count int
	if err := s.ormDB.Model(schema.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if err := s.ormDB.Model(schema.User{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNumberTaken
	}

	u := schema.User{
		Email:    email,
		Number:   number,
		Role:     role,
		Password: passwordHash,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		// two registrations racing past the pre-checks land here
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &u, nil
}

// GetUser returns the user of a given id
func (s *CommunityStore) GetUser(id int64) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns the user of a given email
func (s *CommunityStore) GetUserByEmail(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
