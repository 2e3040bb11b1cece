package cache

import "time"

// GetInput contains parameters for a cache lookup
type GetInput struct {
	Key string
}

// GetOutput contains the result of a cache lookup
type GetOutput struct {
	// Hit is true when the key was present
	Hit bool

	// Payload is the cached value when Hit is true
	Payload []byte
}

// SetInput contains parameters for storing a cached payload
type SetInput struct {
	// TournamentID owns the derived key in the invalidation index
	TournamentID string

	// Key is the full cache key
	Key string

	// Payload is the value to cache
	Payload []byte

	// TTL bounds staleness if invalidation is never triggered; zero means no expiry
	TTL time.Duration
}

// InvalidateTournamentInput contains parameters for invalidating a tournament's keys
type InvalidateTournamentInput struct {
	TournamentID string
}
