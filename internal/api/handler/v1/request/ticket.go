package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ValidateTicketsRequest struct {
	Codes []string `json:"codes"`
	Used  bool     `json:"used"`
}

func (req *ValidateTicketsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Codes, validation.Required, validation.Length(1, 1000)),
	)
}
