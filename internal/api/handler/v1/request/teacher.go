package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type TeacherRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	HourlyRate int    `json:"hourly_rate"`
}

func (req *TeacherRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Subject, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.HourlyRate, validation.Min(0)),
	)
}
