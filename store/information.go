package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/community-aid/helpboard-api/schema"
)

var (
	ErrInformationExists = fmt.Errorf("information already exists for this user")
	ErrAgeOutOfRange     = fmt.Errorf("age must be between %d and %d", schema.InformationMinAge, schema.InformationMaxAge)
	ErrNameRequired      = fmt.Errorf("name is required")
)

func validateInformation(name string, age int) error {
	if name == "" {
		return ErrNameRequired
	}
	if age < schema.InformationMinAge || age > schema.InformationMaxAge {
		return ErrAgeOutOfRange
	}
	return nil
}

// GetInformation returns the profile information of a user. Absence
// surfaces as a gorm record-not-found error; callers treat it as "not yet
// filled in", not as a failure.
func (s *CommunityStore) GetInformation(userID int64) (*schema.Information, error) {
	var info schema.Information
	if err := s.ormDB.Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateInformation saves a user's profile information for the first
// time. Each user has at most one.
func (s *CommunityStore) CreateInformation(userID int64, name string, age int) (*schema.Information, error) {
	if err := validateInformation(name, age); err != nil {
		return nil, err
	}

	info := schema.Information{
		UserID: userID,
		Name:   name,
		Age:    age,
	}

	if err := s.ormDB.Create(&info).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrInformationExists
		}
		return nil, err
	}

	return &info, nil
}

// UpdateInformation replaces the editable fields of an existing profile.
// The help count is never writable through this path.
func (s *CommunityStore) UpdateInformation(userID int64, name string, age int) (*schema.Information, error) {
	if err := validateInformation(name, age); err != nil {
		return nil, err
	}

	var info schema.Information
	if err := s.ormDB.Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}

	info.Name = name
	info.Age = age

	if err := s.ormDB.Save(&info).Error; err != nil {
		return nil, err
	}

	return &info, nil
}
