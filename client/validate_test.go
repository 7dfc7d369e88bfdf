package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/community-aid/helpboard-api/schema"
)

func TestValidateCreateSchedule(t *testing.T) {
	now := time.Date(2031, 5, 1, 10, 0, 0, 0, time.UTC)

	when, err := ValidateCreateSchedule("carry groceries", "2031-05-02T10:00:00Z", now)
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2031, 5, 2, 10, 0, 0, 0, time.UTC), when)

	_, err = ValidateCreateSchedule("", "2031-05-02T10:00:00Z", now)
	assert.NotNil(t, err)

	_, err = ValidateCreateSchedule("carry groceries", "not-a-date", now)
	assert.NotNil(t, err)

	// strictly in the future: the current instant is rejected too
	_, err = ValidateCreateSchedule("carry groceries", "2031-05-01T10:00:00Z", now)
	assert.NotNil(t, err)

	_, err = ValidateCreateSchedule("carry groceries", "2031-04-30T10:00:00Z", now)
	assert.NotNil(t, err)
}

func TestValidateRegistration(t *testing.T) {
	ok := func(err error) { assert.Nil(t, err) }
	fail := func(err error) {
		_, isValidation := err.(*ValidationError)
		assert.True(t, isValidation, "expected *ValidationError, got %T", err)
	}

	ok(ValidateRegistration("a@b.c", "555", "hunter22", "hunter22", schema.RoleNeedy))
	fail(ValidateRegistration("", "555", "hunter22", "hunter22", schema.RoleNeedy))
	fail(ValidateRegistration("a@b.c", "", "hunter22", "hunter22", schema.RoleNeedy))
	fail(ValidateRegistration("a@b.c", "555", "hunter22", "hunter22", schema.UserRole("WIZARD")))
	fail(ValidateRegistration("a@b.c", "555", "short", "short", schema.RoleNeedy))
	fail(ValidateRegistration("a@b.c", "555", "hunter22", "hunter23", schema.RoleNeedy))
}

func TestValidateInformationAgeBounds(t *testing.T) {
	assert.Nil(t, ValidateInformation("Dana", 14))
	assert.Nil(t, ValidateInformation("Dana", 130))

	assert.NotNil(t, ValidateInformation("Dana", 13))
	assert.NotNil(t, ValidateInformation("Dana", 131))
	assert.NotNil(t, ValidateInformation("", 34))
}
