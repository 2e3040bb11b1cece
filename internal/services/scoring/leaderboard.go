package scoring

import (
	"sort"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// Build ranks players for a tournament leaderboard. Players outside the given
// flight are dropped, scores outside the given round are dropped (zero means
// all rounds), and players with no recorded holes are appended unranked as
// "not started". Positions follow standard competition ranking: tied players
// share the position of the best ordinal and the next distinct value skips
// the tied count.
func Build(players []*models.Player, scores []*models.ScoreRecord, tournament *models.Tournament, format models.Format, flightID string, round int) []*models.LeaderboardEntry {
	roundsInScope := tournament.Rounds
	if round > 0 {
		roundsInScope = 1
	}
	expectedHoles := roundsInScope * tournament.HolesPerRound()

	// Group scores by player, honoring the round filter
	byPlayer := make(map[string][]*models.ScoreRecord)
	for _, record := range scores {
		if round > 0 && record.Round != round {
			continue
		}
		byPlayer[record.PlayerID] = append(byPlayer[record.PlayerID], record)
	}

	ranked := make([]*models.LeaderboardEntry, 0, len(players))
	notStarted := make([]*models.LeaderboardEntry, 0)

	for _, player := range players {
		if flightID != "" && player.FlightID != flightID {
			continue
		}

		playerScores := byPlayer[player.ID]
		total := Aggregate(playerScores, format, tournament, player, expectedHoles)

		entry := &models.LeaderboardEntry{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			Handicap:    player.Handicap,
			Points:      total.Points,
			ToPar:       total.ToPar,
			HolesPlayed: total.HolesPlayed,
			RoundScores: roundBreakdown(playerScores, format, tournament, player, round),
			FlightName:  player.FlightName,
		}

		switch format {
		case models.FormatNet:
			entry.Total = total.Net
		case models.FormatStableford:
			entry.Total = total.Points
		default:
			entry.Total = total.Gross
		}

		switch {
		case total.HolesPlayed == 0:
			entry.Status = models.EntryStatusNotStarted
			notStarted = append(notStarted, entry)
			continue
		case total.Complete():
			entry.Status = models.EntryStatusFinished
		default:
			entry.Status = models.EntryStatusInProgress
		}

		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			if format == models.FormatStableford {
				// Higher points rank first
				return ranked[i].Total > ranked[j].Total
			}
			return ranked[i].Total < ranked[j].Total
		}
		if ranked[i].PlayerName != ranked[j].PlayerName {
			return ranked[i].PlayerName < ranked[j].PlayerName
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	// Standard competition ranking: ties share a position, the next distinct
	// value's position is 1 + the count of strictly better players
	for i, entry := range ranked {
		if i > 0 && entry.Total == ranked[i-1].Total {
			entry.Position = ranked[i-1].Position
			continue
		}
		entry.Position = i + 1
	}

	sort.SliceStable(notStarted, func(i, j int) bool {
		return notStarted[i].PlayerName < notStarted[j].PlayerName
	})

	return append(ranked, notStarted...)
}

// roundBreakdown computes the per-round display totals for one player
func roundBreakdown(scores []*models.ScoreRecord, format models.Format, tournament *models.Tournament, player *models.Player, round int) map[int]int {
	byRound := make(map[int][]*models.ScoreRecord)
	for _, record := range scores {
		byRound[record.Round] = append(byRound[record.Round], record)
	}

	breakdown := make(map[int]int, len(byRound))
	for r, roundScores := range byRound {
		if round > 0 && r != round {
			continue
		}
		total := Aggregate(roundScores, format, tournament, player, tournament.HolesPerRound())
		switch format {
		case models.FormatNet:
			breakdown[r] = total.Net
		case models.FormatStableford:
			breakdown[r] = total.Points
		default:
			breakdown[r] = total.Gross
		}
	}

	return breakdown
}
