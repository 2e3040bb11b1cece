package httpapi

import (
	"time"

	"github.com/vanhoutenbos/golfapp/internal/models"
	"github.com/vanhoutenbos/golfapp/internal/services/scoring"
	"github.com/vanhoutenbos/golfapp/internal/services/sync"
)

// Config holds the configuration for the HTTP handler
type Config struct {
	// Sync service
	SyncService sync.Service

	// Scoring service
	ScoringService scoring.Service

	// Claims resolves caller identity from the request; nil uses header claims
	Claims ClaimsResolver

	// RequestTimeout bounds each request; zero uses a default
	RequestTimeout time.Duration

	// ThrottleLimit caps in-flight requests; zero uses a default
	ThrottleLimit int
}

// syncRequest is the wire form of one device's edit batch
type syncRequest struct {
	DeviceID        string           `json:"device_id"`
	TournamentID    string           `json:"tournament_id"`
	PlayerID        string           `json:"player_id"`
	ClientTimestamp time.Time        `json:"client_timestamp"`
	Scores          []*wireScoreEdit `json:"scores"`
}

// wireScoreEdit is the wire form of one score edit
type wireScoreEdit struct {
	ID                string    `json:"id,omitempty"`
	TournamentID      string    `json:"tournament_id"`
	PlayerID          string    `json:"player_id"`
	Round             int       `json:"round"`
	Hole              int       `json:"hole"`
	Strokes           int       `json:"strokes"`
	Putts             *int      `json:"putts,omitempty"`
	PenaltyStrokes    *int      `json:"penalty_strokes,omitempty"`
	FairwayHit        *bool     `json:"fairway_hit,omitempty"`
	GreenInRegulation *bool     `json:"green_in_regulation,omitempty"`
	SandSave          *bool     `json:"sand_save,omitempty"`
	UpAndDown         *bool     `json:"up_and_down,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
	BaseUpdatedAt     time.Time `json:"base_updated_at"`
}

// wireSyncResult is the wire form of one per-item sync outcome
type wireSyncResult struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Entity       string              `json:"entity"`
	ServerData   *models.ScoreRecord `json:"server_data,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

// syncResponse is the wire form of a processed batch
type syncResponse struct {
	Results         []*wireSyncResult `json:"results"`
	ServerTimestamp time.Time         `json:"server_timestamp"`
}

// wireLeaderboardEntry is the wire form of one ranked leaderboard row
type wireLeaderboardEntry struct {
	Position    int                `json:"position"`
	PlayerID    string             `json:"player_id"`
	PlayerName  string             `json:"player_name"`
	Handicap    float64            `json:"handicap"`
	Total       int                `json:"total"`
	Points      int                `json:"points,omitempty"`
	ToPar       *int               `json:"to_par,omitempty"`
	HolesPlayed int                `json:"holes_played"`
	RoundScores map[int]int        `json:"round_scores"`
	Status      models.EntryStatus `json:"status"`
	FlightName  string             `json:"flight_name,omitempty"`
}

// roundInfo describes the round dimension of a leaderboard view
type roundInfo struct {
	Rounds        int `json:"rounds"`
	Round         int `json:"round,omitempty"`
	HolesPerRound int `json:"holes_per_round"`
}

// leaderboardResponse is the wire form of a leaderboard view
type leaderboardResponse struct {
	TournamentID   string                  `json:"tournament_id"`
	TournamentName string                  `json:"tournament_name"`
	Format         models.Format           `json:"format"`
	CourseName     string                  `json:"course_name"`
	LastUpdated    time.Time               `json:"last_updated"`
	Leaderboard    []*wireLeaderboardEntry `json:"leaderboard"`
	RoundInfo      roundInfo               `json:"round_info"`
}

// errorResponse is the wire form of a request-level failure
type errorResponse struct {
	Error string `json:"error"`
}
