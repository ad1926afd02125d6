package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateUserRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Contact string `json:"contact"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Name, validation.Length(0, 100)),
		validation.Field(&req.Image, is.URL),
	)
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	Contact string `json:"contact"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.Image, is.URL),
		validation.Field(&req.Contact, validation.Length(0, 30)),
	)
}
