package response

import (
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/otp"
	"github.com/squadhelper/tryouts/internal/services/views"
)

// User represents an account in API responses. Passwords never leave the
// server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// UserFromIdentity converts a model.Identity to a response User
func UserFromIdentity(id model.Identity) User {
	return User{
		ID:       string(id.ID),
		Username: id.Username,
		Email:    id.Email,
		Phone:    id.Phone,
		Role:     string(id.Role),
	}
}

// AuthResponse is the response for endpoints that establish a session
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *model.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromIdentity(s.Identity),
		SessionToken: s.Token,
	}
}

// ChallengeResponse is returned when a login requires code verification
type ChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
	ContactHint string `json:"contact_hint"`
}

// ChallengeFromModel converts an otp.Challenge
func ChallengeFromModel(c otp.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ChallengeID: c.ID,
		ContactHint: c.ContactHint,
	}
}

// Player represents a registration in API responses
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Contact    string `json:"contact"`
	Sport      string `json:"sport"`
	Level      string `json:"level"`
	Registered bool   `json:"registered"`
	Attendance *bool  `json:"attendance"`
}

// PlayerFromModel converts a model.PlayerEntry to a response Player
func PlayerFromModel(p *model.PlayerEntry) Player {
	return Player{
		ID:         string(p.ID),
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		Contact:    p.Contact,
		Sport:      p.Sport,
		Level:      string(p.Level),
		Registered: p.Registered,
		Attendance: p.Attendance,
	}
}

// PlayersFromModel converts a slice of entries
func PlayersFromModel(entries []model.PlayerEntry) []Player {
	players := make([]Player, len(entries))
	for i := range entries {
		players[i] = PlayerFromModel(&entries[i])
	}
	return players
}

// PlayersResponse wraps a player list
type PlayersResponse struct {
	Players []Player `json:"players"`
}

// SportsResponse wraps the sport catalogue
type SportsResponse struct {
	Sports []string `json:"sports"`
}

// AttendanceResponse partitions a sport's roster by marked attendance
type AttendanceResponse struct {
	Sport   string   `json:"sport"`
	Present []Player `json:"present"`
	Absent  []Player `json:"absent"`
}

// AttendanceFromPartition converts a views.Partition
func AttendanceFromPartition(sport string, p views.Partition) AttendanceResponse {
	return AttendanceResponse{
		Sport:   sport,
		Present: PlayersFromModel(p.Present),
		Absent:  PlayersFromModel(p.Absent),
	}
}

// SummaryResponse reports registration counts
type SummaryResponse struct {
	Total   int            `json:"total"`
	BySport map[string]int `json:"by_sport"`
}
