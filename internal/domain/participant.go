package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "Pending"
	ConfirmationConfirmed ConfirmationStatus = "Confirmed"
)

// Participant is a registration of one user for one camp. Camp fields are copied at
// registration time and are not kept in sync with the camp afterwards.
type Participant struct {
	ID                 string             `json:"id"`
	CampID             string             `json:"campId"`
	CampName           string             `json:"campName"`
	CampFees           string             `json:"campFees"`
	Location           string             `json:"location"`
	ProfessionalName   string             `json:"professionalName"`
	ParticipantName    string             `json:"participantName"`
	ParticipantEmail   string             `json:"participantEmail"`
	Age                int                `json:"age"`
	Phone              string             `json:"phone"`
	Gender             string             `json:"gender"`
	EmergencyContact   string             `json:"emergencyContact"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ParticipantRow is one line of the organizer participant listing: a registration
// left-joined with its payment, if any.
type ParticipantRow struct {
	ID                 string             `json:"id"`
	CampID             string             `json:"campId"`
	ParticipantName    string             `json:"participantName"`
	ParticipantEmail   string             `json:"participantEmail"`
	CampName           string             `json:"campName"`
	CampFees           string             `json:"campFees"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus"`
	TransactionID      string             `json:"transactionId,omitempty"`
}

// AnalyticsRow is a registration enriched with the live participant count of the camp
// carrying the same name.
type AnalyticsRow struct {
	ID               string    `json:"id"`
	CampName         string    `json:"campName"`
	CampFees         string    `json:"campFees"`
	ParticipantName  string    `json:"participantName"`
	PaymentStatus    string    `json:"paymentStatus"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RegistrationOutcome reports each step of a registration: the insert and the camp
// counter increment. Complete is true only when both applied.
type RegistrationOutcome struct {
	Participant      Participant `json:"participant"`
	InsertedID       string      `json:"insertedId,omitempty"`
	Registered       bool        `json:"registered"`
	CountIncremented bool        `json:"countIncremented"`
	Complete         bool        `json:"complete"`
	FailedStep       string      `json:"failedStep,omitempty"`
	Error            string      `json:"error,omitempty"`
}
