package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Email:           "staff@example.com",
		Password:        "passw0rd",
		ConfirmPassword: "passw0rd",
		Name:            "Staff Member",
		Role:            "staff",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr bool
	}{
		{"valid staff", func(r *SignupRequest) {}, false},
		{"valid admin", func(r *SignupRequest) { r.Role = "admin" }, false},
		{"missing email", func(r *SignupRequest) { r.Email = "" }, true},
		{"malformed email", func(r *SignupRequest) { r.Email = "not-an-email" }, true},
		{"unknown role", func(r *SignupRequest) { r.Role = "owner" }, true},
		{"password too short", func(r *SignupRequest) { r.Password = "abc1"; r.ConfirmPassword = "abc1" }, true},
		{"password without digit", func(r *SignupRequest) { r.Password = "passwords"; r.ConfirmPassword = "passwords" }, true},
		{"password without letter", func(r *SignupRequest) { r.Password = "12345678"; r.ConfirmPassword = "12345678" }, true},
		{"confirm mismatch", func(r *SignupRequest) { r.ConfirmPassword = "passw0rd2" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "staff@example.com", Password: "passw0rd"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "staff@example.com"}
	assert.Error(t, missing.Validate())
}
