package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case ChallengeResult:
		o.printChallengeResult(v)
	case Player:
		o.printPlayer(v)
	case PlayersResult:
		o.printPlayers(v)
	case SportsResult:
		o.printSports(v)
	case AttendanceResult:
		o.printAttendance(v)
	case SummaryResult:
		o.printSummary(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("ID:       %s\n", u.ID)
	fmt.Printf("Username: %s\n", u.Username)
	if u.Email != "" {
		fmt.Printf("Email:    %s\n", u.Email)
	}
	if u.Phone != "" {
		fmt.Printf("Phone:    %s\n", u.Phone)
	}
	fmt.Printf("Role:     %s\n", u.Role)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token:    %s\n", a.SessionToken)
}

func (o *Output) printChallengeResult(c ChallengeResult) {
	fmt.Printf("Challenge: %s\n", c.ChallengeID)
	fmt.Printf("A verification code was sent to your %s\n", c.ContactHint)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("ID:         %s\n", p.ID)
	fmt.Printf("Name:       %s\n", p.Name)
	fmt.Printf("Age:        %d\n", p.Age)
	fmt.Printf("Gender:     %s\n", p.Gender)
	fmt.Printf("Contact:    %s\n", p.Contact)
	fmt.Printf("Sport:      %s\n", p.Sport)
	fmt.Printf("Level:      %s\n", p.Level)
	fmt.Printf("Attendance: %s\n", attendanceText(p.Attendance))
}

func (o *Output) printPlayers(r PlayersResult) {
	if len(r.Players) == 0 {
		fmt.Println("No players registered")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tSPORT\tLEVEL\tATTENDANCE")
	for _, p := range r.Players {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Age, p.Sport, p.Level, attendanceText(p.Attendance))
	}
	_ = w.Flush()
}

func (o *Output) printSports(r SportsResult) {
	fmt.Println(strings.Join(r.Sports, "\n"))
}

func (o *Output) printAttendance(r AttendanceResult) {
	fmt.Printf("%s attendance\n", r.Sport)
	fmt.Printf("Present (%d):\n", len(r.Present))
	for _, p := range r.Present {
		fmt.Printf("  %s\n", p.Name)
	}
	fmt.Printf("Absent (%d):\n", len(r.Absent))
	for _, p := range r.Absent {
		fmt.Printf("  %s\n", p.Name)
	}
}

func (o *Output) printSummary(r SummaryResult) {
	fmt.Printf("Total registrations: %d\n", r.Total)

	sports := make([]string, 0, len(r.BySport))
	for sport := range r.BySport {
		sports = append(sports, sport)
	}
	sort.Strings(sports)
	for _, sport := range sports {
		fmt.Printf("  %s: %d\n", sport, r.BySport[sport])
	}
}

func attendanceText(present *bool) string {
	switch {
	case present == nil:
		return "not marked"
	case *present:
		return "present"
	default:
		return "absent"
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// ChallengeResult is the pending-verification response for a login
type ChallengeResult struct {
	ChallengeID string `json:"challenge_id"`
	ContactHint string `json:"contact_hint"`
}

// Player response type
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Contact    string `json:"contact"`
	Sport      string `json:"sport"`
	Level      string `json:"level"`
	Attendance *bool  `json:"attendance"`
}

// PlayersResult wraps a player list
type PlayersResult struct {
	Players []Player `json:"players"`
}

// SportsResult wraps the sport catalogue
type SportsResult struct {
	Sports []string `json:"sports"`
}

// AttendanceResult partitions a roster
type AttendanceResult struct {
	Sport   string   `json:"sport"`
	Present []Player `json:"present"`
	Absent  []Player `json:"absent"`
}

// SummaryResult reports registration counts
type SummaryResult struct {
	Total   int            `json:"total"`
	BySport map[string]int `json:"by_sport"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}
