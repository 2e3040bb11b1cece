package scoring

// ScoringError is a custom error type for scoring-related errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTournamentNotFound ScoringError = "tournament not found"
	ErrUnsupportedFormat  ScoringError = "format is not supported for leaderboards"
	ErrInvalidRound       ScoringError = "round is out of range for this tournament"
	ErrNilConfig          ScoringError = "config cannot be nil"
	ErrNilScoreRepo       ScoringError = "score repository cannot be nil"
	ErrNilPlayerRepo      ScoringError = "player repository cannot be nil"
	ErrNilTournamentRepo  ScoringError = "tournament repository cannot be nil"
	ErrNilCache           ScoringError = "cache cannot be nil"
	ErrNilClock           ScoringError = "clock cannot be nil"
)
