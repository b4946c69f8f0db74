package model

// PlayerID uniquely identifies a tryout registration entry
type PlayerID string

// Level is a player's self-reported skill level
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelProfessional Level = "Professional"
)

// Valid reports whether the level is one of the known levels
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelProfessional:
		return true
	}
	return false
}

// PlayerEntry is a single tryout registration. Entries are kept in
// insertion order; that order is the only ordering anywhere in the app.
//
// Attendance is nil until an admin marks the player on selection day.
// A nil attendance is distinct from both present and absent: unmarked
// players appear in neither partition of the attendance views.
type PlayerEntry struct {
	ID         PlayerID `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	Contact    string   `json:"contact"`
	Sport      string   `json:"sport"`
	Level      Level    `json:"level"`
	Registered bool     `json:"registered"`
	Attendance *bool    `json:"attendance,omitempty"`
}

// DefaultSports is the catalog seeded into a fresh installation
var DefaultSports = []string{
	"Football",
	"Basketball",
	"Cricket",
	"Tennis",
	"Volleyball",
	"Swimming",
	"Athletics",
}
