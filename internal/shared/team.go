package shared

import "fmt"

// Team identifies one of the two partnerships.
type Team int

const (
	TeamA Team = 0 // seats 0 and 2
	TeamB Team = 1 // seats 1 and 3
)

// Teams lists both partnerships.
var Teams = [2]Team{TeamA, TeamB}

// TeamOf returns the partnership a seat belongs to.
func TeamOf(seat int) Team {
	return Team(seat % 2)
}

// Partner returns the seat across the table.
func Partner(seat int) int {
	return (seat + 2) % NumSeats
}

// Other returns the opposing partnership.
func (t Team) Other() Team {
	return 1 - t
}

// Seats returns the two seats of the partnership.
func (t Team) Seats() [2]int {
	return [2]int{int(t), int(t) + 2}
}

func (t Team) String() string {
	if t == TeamA {
		return "Team A"
	}
	return "Team B"
}

// MarshalText renders the team by name in JSON payloads.
func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *Team) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Team A":
		*t = TeamA
	case "Team B":
		*t = TeamB
	default:
		return fmt.Errorf("unknown team %q", text)
	}
	return nil
}
