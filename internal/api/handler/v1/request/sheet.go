package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type GenerateSheetsRequest struct {
	Level       string `json:"level"`
	PackSize    int    `json:"pack_size"`
	Generations int    `json:"generations"`
}

func (req *GenerateSheetsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Level, validation.Required, validation.In("K", "P", "M", "H", "A")),
		validation.Field(&req.PackSize, validation.Required, validation.In(12, 24, 48)),
		validation.Field(&req.Generations, validation.Required, validation.Min(1), validation.Max(100)),
	)
}
