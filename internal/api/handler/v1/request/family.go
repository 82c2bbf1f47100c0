package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type FamilyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (req *FamilyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}
