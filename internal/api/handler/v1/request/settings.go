package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateLogoRequest struct {
	Data string `json:"data"` // image data URI
}

func (req *UpdateLogoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Data, validation.Required),
	)
}
