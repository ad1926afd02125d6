package request

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreatePaymentIntentRequest accepts the price as a JSON number or a numeric string.
type CreatePaymentIntentRequest struct {
	Price json.Number `json:"price"`
}

func (req *CreatePaymentIntentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Required),
	)
}

type PaymentRequest struct {
	ParticipantID string `json:"participantId"`
	TransactionID string `json:"transactionId"`
}

func (req *PaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required, is.MongoID),
		validation.Field(&req.TransactionID, validation.Required, validation.Length(1, 255)),
	)
}
