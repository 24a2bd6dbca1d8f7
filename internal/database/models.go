package database

// MatchResult is the archived summary of a finished match. Game state itself
// is never stored.
type MatchResult struct {
	ID         string `json:"id"`
	GameID     string `json:"game_id"`
	RoomCode   string `json:"room_code"`
	CreatedAt  string `json:"created_at"`
	Variant    string `json:"variant"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Player3    string `json:"player3"`
	Player4    string `json:"player4"`
	Team1Score int    `json:"team1_score"`
	Team2Score int    `json:"team2_score"`
	Winner     string `json:"winner"` // "Team A", "Team B" or "tie"
	Hands      int    `json:"hands"`
}

// WinnerTie marks a drawn match in MatchResult.Winner.
const WinnerTie = "tie"
