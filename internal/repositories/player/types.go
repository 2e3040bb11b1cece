package player

import "github.com/vanhoutenbos/golfapp/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetTournamentPlayersInput contains parameters for retrieving a tournament roster
type GetTournamentPlayersInput struct {
	TournamentID string
}

// GetTournamentPlayersOutput contains the players registered for a tournament
type GetTournamentPlayersOutput struct {
	Players []*models.Player
}
