package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type Payment struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	CampID        string        `json:"campId"`
	ParticipantID string        `json:"participantId"`
	CampName      string        `json:"campName"`
	CampFees      string        `json:"campFees"`
	TransactionID string        `json:"transactionId"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Date          time.Time     `json:"date"`
}

// PaymentHistoryRow is a payment flattened with the registration it paid for.
type PaymentHistoryRow struct {
	ID                 string    `json:"id"`
	TransactionID      string    `json:"transactionId"`
	CampName           string    `json:"campName"`
	CampFees           string    `json:"campFees"`
	PaymentStatus      string    `json:"paymentStatus"`
	ConfirmationStatus string    `json:"confirmationStatus"`
	Date               time.Time `json:"date"`
}

const (
	PaymentStepRecord       = "recordPayment"
	PaymentStepRegistration = "markRegistrationPaid"
	PaymentStepFinalize     = "finalizePayment"

	RegistrationStepInsert    = "insertRegistration"
	RegistrationStepIncrement = "incrementParticipantCount"
)

// PaymentOutcome reports how far the payment saga got. Steps already applied are not
// rolled back; FailedStep names the first step that did not apply.
type PaymentOutcome struct {
	InsertedID       string `json:"insertedId,omitempty"`
	PaymentRecorded  bool   `json:"paymentRecorded"`
	RegistrationPaid bool   `json:"registrationPaid"`
	PaymentFinalized bool   `json:"paymentFinalized"`
	Complete         bool   `json:"complete"`
	FailedStep       string `json:"failedStep,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (o *PaymentOutcome) Fail(step string, err error) {
	o.Complete = false
	o.FailedStep = step
	o.Error = err.Error()
}

// ParseFees coerces a fee stored as text. Non-numeric, non-finite or empty values are 0.
func ParseFees(fees string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(fees), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FeesToMinorUnits converts a fee to the smallest currency unit, rounding to the nearest cent.
func FeesToMinorUnits(fees float64) int64 {
	return int64(math.Round(fees * 100))
}
