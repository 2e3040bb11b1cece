package scoring

import (
	"math"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// stablefordPoints converts a hole's score relative to net par into points.
// diff is strokes minus net par.
func stablefordPoints(diff int) int {
	switch {
	case diff <= -3:
		return 5
	case diff == -2:
		return 4
	case diff == -1:
		return 3
	case diff == 0:
		return 2
	case diff == 1:
		return 1
	default:
		return 0
	}
}

// handicapStrokes returns the strokes a player receives on a hole. Allocation
// follows the stroke index: every hole gets handicap/holes strokes, and the
// remainder goes to the lowest-index (hardest) holes. A plus handicap receives
// nothing.
func handicapStrokes(handicap float64, strokeIndex, holesPerRound int) int {
	if holesPerRound <= 0 {
		return 0
	}

	playing := int(math.Round(handicap))
	if playing <= 0 {
		return 0
	}

	strokes := playing / holesPerRound
	if strokeIndex <= playing%holesPerRound {
		strokes++
	}
	return strokes
}

// Aggregate computes a player's totals over a set of score records. The caller
// scopes the records (a single round or the whole tournament) and states how
// many holes a complete result requires. Missing holes are excluded from the
// totals but leave the result incomplete, which keeps ToPar nil.
func Aggregate(scores []*models.ScoreRecord, format models.Format, tournament *models.Tournament, player *models.Player, expectedHoles int) *models.PlayerTotal {
	total := &models.PlayerTotal{
		PlayerID:      player.ID,
		HolesExpected: expectedHoles,
	}

	holesPerRound := tournament.HolesPerRound()
	parPlayed := 0

	for _, record := range scores {
		hole := tournament.HoleByNumber(record.Hole)
		if hole == nil {
			continue
		}

		allocated := handicapStrokes(player.Handicap, hole.StrokeIndex, holesPerRound)
		netPar := hole.Par + allocated

		total.Gross += record.Strokes
		total.Net += record.Strokes - allocated
		total.Points += stablefordPoints(record.Strokes - netPar)
		total.HolesPlayed++
		parPlayed += hole.Par
	}

	// Stableford is reported in points, not relative to par
	if total.Complete() && format != models.FormatStableford {
		var toPar int
		switch format {
		case models.FormatNet:
			toPar = total.Net - parPlayed
		default:
			toPar = total.Gross - parPlayed
		}
		total.ToPar = &toPar
	}

	return total
}
