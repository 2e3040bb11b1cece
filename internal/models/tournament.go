package models

// Format represents how a tournament is scored
type Format string

const (
	// FormatGross ranks players by raw stroke count
	FormatGross Format = "gross"

	// FormatNet ranks players by strokes adjusted for handicap
	FormatNet Format = "net"

	// FormatStableford ranks players by points scored per hole against net par
	FormatStableford Format = "stableford"

	// FormatMatch is head-to-head match play
	FormatMatch Format = "match"
)

// Hole describes one hole of the course a tournament is played on
type Hole struct {
	// Number is the 1-based hole number
	Number int `json:"number"`

	// Par is the expected stroke count for the hole
	Par int `json:"par"`

	// StrokeIndex ranks the hole's difficulty (1 = hardest); unique per tee,
	// used to allocate handicap strokes
	StrokeIndex int `json:"stroke_index"`
}

// Tournament represents a golf tournament and the course data needed to score it
type Tournament struct {
	// ID is the unique identifier for the tournament
	ID string `json:"id"`

	// Name is the tournament's display name
	Name string `json:"name"`

	// CourseName is the display name of the course being played
	CourseName string `json:"course_name"`

	// Format is the tournament's scoring format
	Format Format `json:"format"`

	// Rounds is the number of rounds in the tournament
	Rounds int `json:"rounds"`

	// Holes is the per-hole course data, ordered by hole number
	Holes []Hole `json:"holes"`

	// MaxStrokesPerHole caps how many strokes may be recorded on a single hole;
	// scores above the cap fail validity
	MaxStrokesPerHole int `json:"max_strokes_per_hole"`
}

// HolesPerRound returns the number of holes in one round.
func (t *Tournament) HolesPerRound() int {
	return len(t.Holes)
}

// HoleByNumber returns the course data for a hole, or nil if unknown.
func (t *Tournament) HoleByNumber(number int) *Hole {
	for i := range t.Holes {
		if t.Holes[i].Number == number {
			return &t.Holes[i]
		}
	}
	return nil
}

// TotalPar returns the course par for a full round.
func (t *Tournament) TotalPar() int {
	total := 0
	for _, h := range t.Holes {
		total += h.Par
	}
	return total
}
