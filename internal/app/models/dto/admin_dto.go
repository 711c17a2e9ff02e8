package dto

// AdminCheckResponse answers the dashboard's "am I an admin" probe
type AdminCheckResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Email   string `json:"email,omitempty"`
}

// MembersCountResponse is the public member counter
type MembersCountResponse struct {
	Count int `json:"count"`
}
