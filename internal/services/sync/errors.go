package sync

// SyncError is a custom error type for sync-related errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBothInvalid        SyncError = "both conflicting versions fail score validity"
	ErrEmptyBatch         SyncError = "batch contains no score edits"
	ErrTournamentNotFound SyncError = "tournament not found"
	ErrNilConfig          SyncError = "config cannot be nil"
	ErrNilScoreRepo       SyncError = "score repository cannot be nil"
	ErrNilTournamentRepo  SyncError = "tournament repository cannot be nil"
	ErrNilResolver        SyncError = "resolver cannot be nil"
	ErrNilCache           SyncError = "cache cannot be nil"
	ErrNilNotifier        SyncError = "notifier cannot be nil"
	ErrNilClock           SyncError = "clock cannot be nil"
	ErrNilUUIDGenerator   SyncError = "UUID generator cannot be nil"
)
