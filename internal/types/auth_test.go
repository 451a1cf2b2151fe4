package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Username: "u1", Password: "pw"}
	assert.NoError(t, valid.Validate())

	missingUser := LoginRequest{Password: "pw"}
	assert.Error(t, missingUser.Validate())

	missingPassword := LoginRequest{Username: "u1"}
	assert.Error(t, missingPassword.Validate())
}

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Username:  "u1",
		Password:  "password",
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
	}
	require.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "pw"
	assert.Error(t, shortPassword.Validate())
}

func TestProfileUpdate_Validate(t *testing.T) {
	valid := ProfileUpdate{FirstName: "Test", LastName: "User", Email: "test@example.com"}
	require.NoError(t, valid.Validate())

	// Password is optional but, when present, must meet the minimum.
	withPassword := valid
	withPassword.Password = "newpassword"
	assert.NoError(t, withPassword.Validate())

	shortPassword := valid
	shortPassword.Password = "ab"
	assert.Error(t, shortPassword.Validate())

	missingEmail := ProfileUpdate{FirstName: "Test", LastName: "User"}
	assert.Error(t, missingEmail.Validate())
}
