package models

import (
	"time"
)

// SyncStatus represents where a score record sits in the sync lifecycle
type SyncStatus string

const (
	// SyncStatusPending indicates a score recorded locally but not yet accepted by the server
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusSynced indicates the score is the authoritative server copy
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusConflict indicates the score lost a resolution and must be reconciled by the client
	SyncStatusConflict SyncStatus = "conflict"
)

// ScoreRecord is one player's result for one hole of one round of one tournament.
// Its natural identity is (TournamentID, PlayerID, Round, Hole); at most one
// authoritative record exists per identity at any time. Records are superseded,
// never deleted.
type ScoreRecord struct {
	// ID is the record's unique identifier (client-generated ids are tolerated)
	ID string `json:"id"`

	// TournamentID identifies the tournament this score belongs to
	TournamentID string `json:"tournament_id"`

	// PlayerID identifies the player who played the hole
	PlayerID string `json:"player_id"`

	// Round is the 1-based round number
	Round int `json:"round"`

	// Hole is the 1-based hole number
	Hole int `json:"hole"`

	// Strokes is the raw stroke count for the hole (1-20)
	Strokes int `json:"strokes"`

	// Putts is the putt count, if recorded
	Putts *int `json:"putts,omitempty"`

	// PenaltyStrokes is the number of penalty strokes, if recorded
	PenaltyStrokes *int `json:"penalty_strokes,omitempty"`

	// FairwayHit records whether the tee shot found the fairway, if recorded
	FairwayHit *bool `json:"fairway_hit,omitempty"`

	// GreenInRegulation records a GIR, if recorded
	GreenInRegulation *bool `json:"green_in_regulation,omitempty"`

	// SandSave records a successful sand save, if recorded
	SandSave *bool `json:"sand_save,omitempty"`

	// UpAndDown records a successful up-and-down, if recorded
	UpAndDown *bool `json:"up_and_down,omitempty"`

	// RecordedBy is the user who entered the score
	RecordedBy string `json:"recorded_by"`

	// IsOfficial is true when the score was entered by a designated official scorer
	IsOfficial bool `json:"is_official"`

	// ClientTimestamp is when the edit was made on the submitting device
	ClientTimestamp time.Time `json:"client_timestamp"`

	// ServerUpdatedAt is when the server accepted this version; it is the
	// compare-and-swap token for concurrent writes
	ServerUpdatedAt time.Time `json:"server_updated_at"`

	// DeviceID identifies the submitting device; used as the deterministic tie-break key
	DeviceID string `json:"device_id"`

	// SyncStatus is the record's position in the sync lifecycle
	SyncStatus SyncStatus `json:"sync_status"`
}

// Identity returns the record's natural identity key fields.
func (s *ScoreRecord) Identity() ScoreIdentity {
	return ScoreIdentity{
		TournamentID: s.TournamentID,
		PlayerID:     s.PlayerID,
		Round:        s.Round,
		Hole:         s.Hole,
	}
}

// SameIdentity reports whether two records describe the same hole result.
func (s *ScoreRecord) SameIdentity(other *ScoreRecord) bool {
	return s.TournamentID == other.TournamentID &&
		s.PlayerID == other.PlayerID &&
		s.Round == other.Round &&
		s.Hole == other.Hole
}

// EqualContent reports whether two records carry the same scoring payload and
// official status, ignoring ids, sync status and server bookkeeping. Used for
// idempotent resubmission detection. The official flag is part of the content:
// an official confirming an existing value changes the record's precedence
// even when the strokes match.
func (s *ScoreRecord) EqualContent(other *ScoreRecord) bool {
	return s.SameIdentity(other) &&
		s.IsOfficial == other.IsOfficial &&
		s.Strokes == other.Strokes &&
		equalIntPtr(s.Putts, other.Putts) &&
		equalIntPtr(s.PenaltyStrokes, other.PenaltyStrokes) &&
		equalBoolPtr(s.FairwayHit, other.FairwayHit) &&
		equalBoolPtr(s.GreenInRegulation, other.GreenInRegulation) &&
		equalBoolPtr(s.SandSave, other.SandSave) &&
		equalBoolPtr(s.UpAndDown, other.UpAndDown)
}

// ScoreIdentity is the natural key of a score record.
type ScoreIdentity struct {
	TournamentID string
	PlayerID     string
	Round        int
	Hole         int
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
