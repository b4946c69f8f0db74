package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the request body for beginning a login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyRequest is the request body for completing a login challenge
type VerifyRequest struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
}

// AddPlayerRequest is the request body for registering a player
type AddPlayerRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
	Sport   string `json:"sport"`
	Level   string `json:"level,omitempty"`
}

// AttendanceRequest is the request body for marking attendance
type AttendanceRequest struct {
	Present *bool `json:"present"`
}

// AddSportRequest is the request body for adding a sport
type AddSportRequest struct {
	Name string `json:"name"`
}
