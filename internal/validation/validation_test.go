package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "plain 10 digits", phone: "9876543210", wantErr: false},
		{name: "with +91 prefix", phone: "+919876543210", wantErr: false},
		{name: "with 91 prefix", phone: "919876543210", wantErr: false},
		{name: "starts with 5", phone: "5876543210", wantErr: true},
		{name: "too short", phone: "98765", wantErr: true},
		{name: "letters", phone: "98765abcde", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid simple", username: "alice", wantErr: false},
		{name: "valid with underscore", username: "alice_123", wantErr: false},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: "a123456789012345678901234567890123", wantErr: true},
		{name: "invalid chars", username: "alice!", wantErr: true},
		{name: "empty", username: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret123"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateSignup(t *testing.T) {
	valid := SignupInput{
		Phone:    "+919876543210",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}
	require.NoError(t, ValidateSignup(valid))

	badPhone := valid
	badPhone.Phone = "12345"
	assert.Error(t, ValidateSignup(badPhone))

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, ValidateSignup(badEmail))

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, ValidateSignup(shortPassword))
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(LoginInput{Phone: "9876543210", Password: "x"}))
	assert.Error(t, ValidateLogin(LoginInput{Phone: "9876543210"}))
	assert.Error(t, ValidateLogin(LoginInput{Password: "x"}))
}

func TestValidateSubmission(t *testing.T) {
	assert.NoError(t, ValidateSubmission("Baingan", "Hyderabad"))
	assert.Error(t, ValidateSubmission("", "Hyderabad"))
	assert.Error(t, ValidateSubmission("Baingan", ""))
}
