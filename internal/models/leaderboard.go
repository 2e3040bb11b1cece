package models

// EntryStatus describes a player's progress through the rounds being ranked
type EntryStatus string

const (
	// EntryStatusNotStarted indicates the player has no recorded holes yet
	EntryStatusNotStarted EntryStatus = "not_started"

	// EntryStatusInProgress indicates the player has recorded some but not all holes
	EntryStatusInProgress EntryStatus = "in_progress"

	// EntryStatusFinished indicates the player has recorded every hole in scope
	EntryStatusFinished EntryStatus = "finished"
)

// PlayerTotal is a player's aggregated result for a set of score records.
// It is a derived, transient value and is never persisted.
type PlayerTotal struct {
	// PlayerID identifies the player
	PlayerID string

	// Gross is the raw stroke total over played holes
	Gross int

	// Net is the stroke total after hole-by-hole handicap allocation
	Net int

	// Points is the stableford point total
	Points int

	// HolesPlayed counts the holes with a recorded score
	HolesPlayed int

	// HolesExpected is the number of holes needed for a complete result
	HolesExpected int

	// ToPar is the total relative to par; nil until every expected hole is recorded
	ToPar *int
}

// Complete reports whether every expected hole has been recorded.
func (t *PlayerTotal) Complete() bool {
	return t.HolesExpected > 0 && t.HolesPlayed == t.HolesExpected
}

// LeaderboardEntry is one ranked row of a leaderboard. Derived, never persisted.
type LeaderboardEntry struct {
	// Position is the player's tie-aware rank; 0 for players who have not started
	Position int `json:"position"`

	// PlayerID identifies the player
	PlayerID string `json:"player_id"`

	// PlayerName is the player's display name
	PlayerName string `json:"player_name"`

	// Handicap is the player's playing handicap
	Handicap float64 `json:"handicap"`

	// Total is the comparison value: strokes for gross/net formats
	Total int `json:"total"`

	// Points is the stableford point total; only meaningful for stableford
	Points int `json:"points"`

	// ToPar is the total relative to par, nil for partial rounds
	ToPar *int `json:"to_par,omitempty"`

	// HolesPlayed counts the holes the player has recorded
	HolesPlayed int `json:"holes_played"`

	// RoundScores maps round number to that round's total, for display
	RoundScores map[int]int `json:"round_scores"`

	// Status is the player's progress through the rounds in scope
	Status EntryStatus `json:"status"`

	// FlightName is the player's flight, if any
	FlightName string `json:"flight_name,omitempty"`
}
