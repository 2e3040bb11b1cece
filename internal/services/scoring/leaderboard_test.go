package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

func fullRound(playerID string, round, strokesPerHole int) []*models.ScoreRecord {
	scores := make([]*models.ScoreRecord, 0, 18)
	for hole := 1; hole <= 18; hole++ {
		scores = append(scores, holeScore(playerID, round, hole, strokesPerHole))
	}
	return scores
}

func TestBuildTieAwareRanking(t *testing.T) {
	tournament := testTournament(models.FormatGross)
	tournament.Rounds = 1

	players := []*models.Player{
		{ID: "p1", Name: "Ada"},
		{ID: "p2", Name: "Ben"},
		{ID: "p3", Name: "Cleo"},
		{ID: "p4", Name: "Dev"},
	}

	var scores []*models.ScoreRecord
	// Three players at 72, one at 75
	scores = append(scores, fullRound("p1", 1, 4)...)
	scores = append(scores, fullRound("p2", 1, 4)...)
	scores = append(scores, fullRound("p3", 1, 4)...)
	p4 := fullRound("p4", 1, 4)
	p4[0].Strokes = 7
	scores = append(scores, p4...)

	entries := Build(players, scores, tournament, models.FormatGross, "", 0)
	require.Len(t, entries, 4)

	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 1, entries[1].Position)
	assert.Equal(t, 1, entries[2].Position)
	assert.Equal(t, 4, entries[3].Position, "after a three-way tie for first the next player is 4th")
	assert.Equal(t, "Dev", entries[3].PlayerName)
	assert.Equal(t, 75, entries[3].Total)
}

func TestBuildStablefordRanksDescending(t *testing.T) {
	tournament := testTournament(models.FormatStableford)
	tournament.Rounds = 1

	players := []*models.Player{
		{ID: "p1", Name: "Ada"},
		{ID: "p2", Name: "Ben"},
	}

	var scores []*models.ScoreRecord
	scores = append(scores, fullRound("p1", 1, 4)...) // pars: 36 points on a par-72 mix
	scores = append(scores, fullRound("p2", 1, 5)...)

	entries := Build(players, scores, tournament, models.FormatStableford, "", 0)
	require.Len(t, entries, 2)

	assert.Equal(t, "Ada", entries[0].PlayerName, "higher points rank first")
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 2, entries[1].Position)
	assert.Greater(t, entries[0].Total, entries[1].Total)
}

func TestBuildNotStartedPlayersAreUnranked(t *testing.T) {
	tournament := testTournament(models.FormatGross)
	tournament.Rounds = 1

	players := []*models.Player{
		{ID: "p1", Name: "Ada"},
		{ID: "p2", Name: "Ben"},
	}

	entries := Build(players, fullRound("p1", 1, 4), tournament, models.FormatGross, "", 0)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, models.EntryStatusFinished, entries[0].Status)

	assert.Equal(t, 0, entries[1].Position)
	assert.Equal(t, models.EntryStatusNotStarted, entries[1].Status)
	assert.Equal(t, "Ben", entries[1].PlayerName)
}

func TestBuildFlightFilter(t *testing.T) {
	tournament := testTournament(models.FormatGross)
	tournament.Rounds = 1

	players := []*models.Player{
		{ID: "p1", Name: "Ada", FlightID: "flight-a", FlightName: "Flight A"},
		{ID: "p2", Name: "Ben", FlightID: "flight-b", FlightName: "Flight B"},
	}

	var scores []*models.ScoreRecord
	scores = append(scores, fullRound("p1", 1, 4)...)
	scores = append(scores, fullRound("p2", 1, 4)...)

	entries := Build(players, scores, tournament, models.FormatGross, "flight-a", 0)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ada", entries[0].PlayerName)
	assert.Equal(t, "Flight A", entries[0].FlightName)
}

func TestBuildRoundFilterAndBreakdown(t *testing.T) {
	tournament := testTournament(models.FormatGross)

	players := []*models.Player{{ID: "p1", Name: "Ada"}}

	var scores []*models.ScoreRecord
	scores = append(scores, fullRound("p1", 1, 4)...)
	scores = append(scores, fullRound("p1", 2, 5)...)

	// All rounds: total spans both, breakdown lists each
	entries := Build(players, scores, tournament, models.FormatGross, "", 0)
	require.Len(t, entries, 1)
	assert.Equal(t, 72+90, entries[0].Total)
	assert.Equal(t, map[int]int{1: 72, 2: 90}, entries[0].RoundScores)
	assert.Equal(t, models.EntryStatusFinished, entries[0].Status)

	// Round 2 only
	entries = Build(players, scores, tournament, models.FormatGross, "", 2)
	require.Len(t, entries, 1)
	assert.Equal(t, 90, entries[0].Total)
	assert.Equal(t, map[int]int{2: 90}, entries[0].RoundScores)
}

func TestBuildInProgressStatus(t *testing.T) {
	tournament := testTournament(models.FormatGross)
	tournament.Rounds = 1

	players := []*models.Player{{ID: "p1", Name: "Ada"}}
	scores := []*models.ScoreRecord{
		holeScore("p1", 1, 1, 4),
		holeScore("p1", 1, 2, 5),
	}

	entries := Build(players, scores, tournament, models.FormatGross, "", 0)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntryStatusInProgress, entries[0].Status)
	assert.Equal(t, 2, entries[0].HolesPlayed)
	assert.Nil(t, entries[0].ToPar)
}
