package domain

type OrganizerStats struct {
	Users     int64   `json:"users"`
	Camps     int64   `json:"camps"`
	Payments  int64   `json:"payments"`
	TotalFees float64 `json:"totalFees"`
}

type ParticipantStats struct {
	Payments               int64   `json:"payments"`
	TotalFees              float64 `json:"totalFees"`
	Registrations          int64   `json:"registrations"`
	PaidRegistrations      int64   `json:"paidRegistrations"`
	UnpaidRegistrations    int64   `json:"unpaidRegistrations"`
	ConfirmedRegistrations int64   `json:"confirmedRegistrations"`
}

// FeeTotal is a payment count with the numeric sum of its fees.
type FeeTotal struct {
	Count int64
	Sum   float64
}

type RegistrationCounts struct {
	Total     int64
	Paid      int64
	Unpaid    int64
	Confirmed int64
}

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type CountResult struct {
	Count int64 `json:"count"`
}
