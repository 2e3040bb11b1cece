package models

import "time"

// ResolutionReason records which rule decided a score conflict
type ResolutionReason string

const (
	// ReasonLocalNewer indicates the client edit carried the newer timestamp
	ReasonLocalNewer ResolutionReason = "LOCAL_NEWER"

	// ReasonServerNewer indicates the server copy carried the newer timestamp
	ReasonServerNewer ResolutionReason = "SERVER_NEWER"

	// ReasonOfficialOverride indicates an official scorer's record beat a self-reported one
	ReasonOfficialOverride ResolutionReason = "OFFICIAL_OVERRIDE"

	// ReasonValidationOverride indicates the only valid side won
	ReasonValidationOverride ResolutionReason = "VALIDATION_OVERRIDE"

	// ReasonFieldMerge indicates the two sides edited disjoint fields and were merged
	ReasonFieldMerge ResolutionReason = "FIELD_MERGE"
)

// ScoreResolution is one audit entry recording how a score conflict was decided.
// Every resolution writes one; losing versions are superseded, never silently merged.
type ScoreResolution struct {
	// ID is the unique identifier for the audit entry
	ID string `json:"id"`

	// TournamentID, PlayerID, Round and Hole identify the contested score
	TournamentID string `json:"tournament_id"`
	PlayerID     string `json:"player_id"`
	Round        int    `json:"round"`
	Hole         int    `json:"hole"`

	// Reason is the rule that decided the conflict
	Reason ResolutionReason `json:"reason"`

	// WinnerDeviceID is the device whose version won (both devices for a merge)
	WinnerDeviceID string `json:"winner_device_id"`

	// LoserDeviceID is the device whose version was superseded
	LoserDeviceID string `json:"loser_device_id"`

	// WinnerTimestamp and LoserTimestamp are the competing edit timestamps
	WinnerTimestamp time.Time `json:"winner_timestamp"`
	LoserTimestamp  time.Time `json:"loser_timestamp"`

	// ResolvedAt is when the server decided the conflict
	ResolvedAt time.Time `json:"resolved_at"`
}
