package model

// UserID uniquely identifies a user account
type UserID string

// Role determines what a user is allowed to do
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserRecord is a stored user account.
// Records are immutable after creation.
//
// The password is stored and compared in plaintext. This mirrors the demo
// nature of the application and is not production-grade; a real deployment
// would hash and salt.
type UserRecord struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// HasContact reports whether the record carries at least one contact method.
// Every record must have one at creation time.
func (u UserRecord) HasContact() bool {
	return u.Email != "" || u.Phone != ""
}

// Identity is a user with the password stripped, safe to hand to callers
type Identity struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// Identity returns the record without its password
func (u UserRecord) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

// Session is the single authenticated identity. At most one exists at a
// time; logging in again overwrites it. The token is an opaque credential
// handed to HTTP callers and invalidated when the session is overwritten
// or cleared.
type Session struct {
	Identity
	Token string `json:"token"`
}

// IsAdmin reports whether the session belongs to an admin
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
