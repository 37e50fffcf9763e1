package validators

import (
	"testing"

	"coachally/internal/errs"
	"coachally/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane.doe@example.com"))
	assert.True(t, ValidateEmail("j+tag@sub.domain.org"))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Str0ngPass!"))
	assert.True(t, ValidatePassword("abcdefgh"))
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword(""))
}

func TestValidateUser(t *testing.T) {
	user := &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "Str0ngPass!",
	}
	assert.Empty(t, ValidateUser(user))

	errsFound := ValidateUser(&models.User{
		FirstName: "J",
		LastName:  "",
		Email:     "bad",
		Password:  "short",
	})
	assert.Contains(t, errsFound, error(errs.ErrInvalidEmail))
	assert.Contains(t, errsFound, error(errs.ErrInvalidPassword))
	assert.Contains(t, errsFound, error(errs.ErrFirstName))
	assert.Contains(t, errsFound, error(errs.ErrLastName))
}

func TestValidateUserNil(t *testing.T) {
	errsFound := ValidateUser(nil)
	assert.Equal(t, []error{errs.ErrInvalidUser}, errsFound)
}
