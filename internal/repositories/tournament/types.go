package tournament

import "github.com/vanhoutenbos/golfapp/internal/models"

// SaveTournamentInput contains parameters for saving a tournament
type SaveTournamentInput struct {
	Tournament *models.Tournament
}

// GetTournamentInput contains parameters for retrieving a tournament
type GetTournamentInput struct {
	TournamentID string
}
