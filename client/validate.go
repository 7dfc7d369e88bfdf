package client

import (
	"time"

	"github.com/community-aid/helpboard-api/schema"
)

const minPasswordLength = 6

// ValidateCreateSchedule checks a create-request form before submission.
// The scheduled time must parse and lie strictly in the future.
func ValidateCreateSchedule(task, dateTime string, now time.Time) (time.Time, error) {
	if task == "" {
		return time.Time{}, validationErr("task", "a task description is required")
	}

	when, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		// allow the HTML datetime-local shape without a zone
		when, err = time.ParseInLocation("2006-01-02T15:04", dateTime, time.Local)
		if err != nil {
			return time.Time{}, validationErr("dateTime", "not a valid date and time")
		}
	}

	if !when.After(now) {
		return time.Time{}, validationErr("dateTime", "the scheduled time must be in the future")
	}

	return when, nil
}

// ValidateRegistration checks a registration form before submission.
func ValidateRegistration(email, number, password, confirm string, role schema.UserRole) error {
	if email == "" {
		return validationErr("email", "email is required")
	}
	if number == "" {
		return validationErr("number", "phone number is required")
	}
	if !role.Valid() {
		return validationErr("userType", "choose a role")
	}
	if len(password) < minPasswordLength {
		return validationErr("password", "password must be at least 6 characters")
	}
	if password != confirm {
		return validationErr("password", "passwords do not match")
	}
	return nil
}

// ValidateInformation checks a profile form before submission.
func ValidateInformation(name string, age int) error {
	if name == "" {
		return validationErr("name", "name is required")
	}
	if age < schema.InformationMinAge || age > schema.InformationMaxAge {
		return validationErr("age", "age must be between 14 and 130")
	}
	return nil
}
