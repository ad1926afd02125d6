package domain

import "time"

type Role string

const (
	RoleOrganizer   Role = "Organizer"
	RoleParticipant Role = "Participant"
)

func (r Role) IsValid() bool {
	return r == RoleOrganizer || r == RoleParticipant
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Role      Role      `json:"role"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

// ProfilePatch holds the user-editable profile fields. Empty fields are left untouched.
type ProfilePatch struct {
	Name    string
	Image   string
	Contact string
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Name == "" && p.Image == "" && p.Contact == ""
}

// CreateUserResult reports whether a sign-in produced a new user record.
// An existing email is not an error: Created is false and InsertedID is nil.
type CreateUserResult struct {
	Created    bool    `json:"created"`
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}
