package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PaymentRequest struct {
	FamilyID uint   `json:"family_id"`
	Amount   int    `json:"amount"` // cents
	Method   string `json:"method"`
	PaidAt   string `json:"paid_at"` // RFC 3339
	Note     string `json:"note"`
}

func (req *PaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FamilyID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
		validation.Field(&req.Method, validation.Required, validation.In("cash", "check", "transfer", "card")),
		validation.Field(&req.PaidAt, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.Note, validation.Length(0, 200)),
	)
}
