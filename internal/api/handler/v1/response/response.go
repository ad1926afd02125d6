package response

type TokenResponse struct {
	Token string `json:"token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RoleResponse struct {
	Organizer   *bool `json:"organizer,omitempty"`
	Participant *bool `json:"participant,omitempty"`
}

type ClientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}
