package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/vanhoutenbos/golfapp/internal/repositories/player Repository

import (
	"context"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player and registers them on the tournament roster
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetTournamentPlayers retrieves every player registered for a tournament
	GetTournamentPlayers(ctx context.Context, input *GetTournamentPlayersInput) (*GetTournamentPlayersOutput, error)
}
