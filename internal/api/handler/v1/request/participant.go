package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterRequest struct {
	CampID           string `json:"campId"`
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail"`
	Age              int    `json:"age"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampID, validation.Required, is.MongoID),
		validation.Field(&req.ParticipantName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ParticipantEmail, is.Email),
		validation.Field(&req.Age, validation.Required, validation.Min(1), validation.Max(120)),
		validation.Field(&req.Phone, validation.Required),
		validation.Field(&req.Gender, validation.Required, validation.Length(1, 20)),
		validation.Field(&req.EmergencyContact, validation.Required),
	)
}
