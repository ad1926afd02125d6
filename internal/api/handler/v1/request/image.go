package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type GenerateImageRequest struct {
	Name     string `json:"name"`
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

func (req *GenerateImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Prompt, validation.Required, validation.Length(3, 500)),
		validation.Field(&req.Category, validation.Required, validation.Length(1, 50)),
	)
}
