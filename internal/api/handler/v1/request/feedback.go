package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type FeedbackRequest struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
	CampName string `json:"campName"`
}

func (req *FeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Image, is.URL),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Feedback, validation.Required, validation.Length(1, 2000)),
	)
}
