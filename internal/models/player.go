package models

// Player represents a tournament participant
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// TournamentID is the tournament the player is registered for
	TournamentID string `json:"tournament_id"`

	// Name is the player's display name
	Name string `json:"name"`

	// Handicap is the player's playing handicap
	Handicap float64 `json:"handicap"`

	// FlightID is the player's flight assignment, if the tournament uses flights
	FlightID string `json:"flight_id,omitempty"`

	// FlightName is the display name of the player's flight
	FlightName string `json:"flight_name,omitempty"`

	// Tee is the player's tee assignment
	Tee string `json:"tee,omitempty"`
}
