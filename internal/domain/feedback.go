package domain

import "time"

type Feedback struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Rating   int       `json:"rating"`
	Feedback string    `json:"feedback"`
	CampName string    `json:"campName,omitempty"`
	Date     time.Time `json:"date"`
}

type FeedbackSummary struct {
	Count         int64            `json:"count"`
	AverageRating float64          `json:"averageRating"`
	Ratings       map[string]int64 `json:"ratings"`
	Latest        []Feedback       `json:"latest"`
}

const LatestFeedbackLimit = 6
