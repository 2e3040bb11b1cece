package sync

import (
	"time"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/common/clock"
	"github.com/vanhoutenbos/golfapp/internal/common/uuid"
	"github.com/vanhoutenbos/golfapp/internal/models"
	"github.com/vanhoutenbos/golfapp/internal/notify"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
)

// ItemStatus is the per-item outcome of a sync batch
type ItemStatus string

const (
	// ItemStatusCreated indicates a first submission was inserted
	ItemStatusCreated ItemStatus = "created"

	// ItemStatusUpdated indicates the local edit (or a merge of it) now is authoritative
	ItemStatusUpdated ItemStatus = "updated"

	// ItemStatusConflict indicates the server version stands; the client must
	// reconcile against the returned server data
	ItemStatusConflict ItemStatus = "conflict"

	// ItemStatusError indicates the item failed on its own; the rest of the
	// batch is unaffected
	ItemStatusError ItemStatus = "error"
)

// Config holds configuration for the sync coordinator
type Config struct {
	// Repository dependencies
	ScoreRepo      scoreRepo.Repository
	TournamentRepo tournamentRepo.Repository

	// Resolver decides conflicting versions
	Resolver Resolver

	// Cache is invalidated whenever a contributing score changes
	Cache cache.Cache

	// Notifier announces leaderboard staleness to subscribers
	Notifier notify.Notifier

	// Clock stamps server acceptance times
	Clock clock.Clock

	// UUIDGenerator mints ids for records and audit entries
	UUIDGenerator uuid.UUID
}

// ScoreEdit is one client-side score edit in a sync batch
type ScoreEdit struct {
	// ID is the client-generated record id; the server matches on natural
	// identity, not on this
	ID string

	// PlayerID, Round and Hole locate the score within the batch's tournament
	PlayerID string
	Round    int
	Hole     int

	// Strokes and the optional per-hole stats carried by the edit
	Strokes           int
	Putts             *int
	PenaltyStrokes    *int
	FairwayHit        *bool
	GreenInRegulation *bool
	SandSave          *bool
	UpAndDown         *bool

	// UpdatedAt is when the edit was made on the device
	UpdatedAt time.Time

	// BaseUpdatedAt is the server_updated_at of the version the client edited,
	// if it knows one; it locates the common ancestor for field merging
	BaseUpdatedAt time.Time
}

// SyncBatchInput contains one device's batch of score edits
type SyncBatchInput struct {
	// TournamentID is the tournament every edit in the batch belongs to
	TournamentID string

	// DeviceID identifies the submitting device
	DeviceID string

	// RecordedBy is the submitting user
	RecordedBy string

	// IsOfficial is true when the submitting user is a designated official scorer
	IsOfficial bool

	// Scores are the edits to apply
	Scores []*ScoreEdit
}

// SyncResult is the outcome for one submitted edit
type SyncResult struct {
	// ID echoes the submitted edit's id
	ID string

	// Status is the item outcome
	Status ItemStatus

	// ServerData is the authoritative record after processing; on conflict it
	// is the copy the client must reconcile against
	ServerData *models.ScoreRecord

	// ErrorMessage describes an item-level failure
	ErrorMessage string

	// stateChanged is true when the item wrote to the score store; identical
	// resubmissions report updated without changing state
	stateChanged bool
}

// SyncBatchOutput contains one result per submitted edit, in input order
type SyncBatchOutput struct {
	Results []*SyncResult

	// ServerTimestamp is when the batch finished processing
	ServerTimestamp time.Time
}
