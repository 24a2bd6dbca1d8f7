package bot

import (
	"fmt"
	"strings"
)

// Difficulty selects a bot's tuning.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the supported tiers from weakest to strongest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty reads a tier name case-insensitively. An empty name means Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown bot difficulty: %q", s)
	}
}

// OrDefault returns Medium for anything that is not a known tier.
func (d Difficulty) OrDefault() Difficulty {
	if parsed, err := ParseDifficulty(string(d)); err == nil {
		return parsed
	}
	return Medium
}
