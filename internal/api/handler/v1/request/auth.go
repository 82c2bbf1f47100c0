package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Lookaheads need regexp2; the stdlib engine doesn't support them.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Role            string `json:"role"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("admin", "staff")),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
