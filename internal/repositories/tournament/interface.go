package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/vanhoutenbos/golfapp/internal/repositories/tournament Repository

import (
	"context"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// Repository defines the interface for tournament data persistence
type Repository interface {
	// SaveTournament persists a tournament
	SaveTournament(ctx context.Context, input *SaveTournamentInput) error

	// GetTournament retrieves a tournament by ID
	GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error)
}
