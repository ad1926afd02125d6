package domain

import "time"

type Camp struct {
	ID               string    `json:"id"`
	CampName         string    `json:"campName"`
	Image            string    `json:"image"`
	DateTime         string    `json:"dateTime"`
	Location         string    `json:"location"`
	ProfessionalName string    `json:"professionalName"`
	Fees             string    `json:"fees"`
	ParticipantCount int       `json:"participantCount"`
	TargetAudience   string    `json:"targetAudience,omitempty"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CampSort string

const (
	CampSortNone             CampSort = ""
	CampSortParticipantCount CampSort = "participantCount"
	CampSortFees             CampSort = "fees"
	CampSortName             CampSort = "campName"
	// CampSortFeesAsc is not exposed through the listing query; affordable camps use it.
	CampSortFeesAsc CampSort = "feesAsc"
)

// ParseCampSort maps the "sorted" query value to a sort key. Unknown values mean no sort.
func ParseCampSort(s string) CampSort {
	switch CampSort(s) {
	case CampSortParticipantCount, CampSortFees, CampSortName:
		return CampSort(s)
	default:
		return CampSortNone
	}
}

type CampQuery struct {
	Search string
	Sort   CampSort
	Page   Page
}

const HighlightedCampsLimit = 6
