package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CampRequest struct {
	CampName         string `json:"campName"`
	Image            string `json:"image"`
	DateTime         string `json:"dateTime"`
	Location         string `json:"location"`
	ProfessionalName string `json:"professionalName"`
	Fees             string `json:"fees"`
	TargetAudience   string `json:"targetAudience"`
	Description      string `json:"description"`
}

func (req *CampRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampName, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Image, is.URL),
		validation.Field(&req.DateTime, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.ProfessionalName, validation.Required),
		validation.Field(&req.Fees, validation.Required, is.Float),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
}
