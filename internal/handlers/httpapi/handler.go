package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vanhoutenbos/golfapp/internal/models"
	"github.com/vanhoutenbos/golfapp/internal/services/scoring"
	"github.com/vanhoutenbos/golfapp/internal/services/sync"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultThrottleLimit  = 100
)

// Handler serves the tournament sync and leaderboard API
type Handler struct {
	syncService    sync.Service
	scoringService scoring.Service
	claims         ClaimsResolver
	requestTimeout time.Duration
	throttleLimit  int
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SyncService == nil {
		return nil, errors.New("sync service cannot be nil")
	}
	if cfg.ScoringService == nil {
		return nil, errors.New("scoring service cannot be nil")
	}

	claims := cfg.Claims
	if claims == nil {
		claims = NewHeaderClaims()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	limit := cfg.ThrottleLimit
	if limit <= 0 {
		limit = defaultThrottleLimit
	}

	return &Handler{
		syncService:    cfg.SyncService,
		scoringService: cfg.ScoringService,
		claims:         claims,
		requestTimeout: timeout,
		throttleLimit:  limit,
	}, nil
}

// Router returns a configured chi router with all routes
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.requestTimeout))
	r.Use(middleware.Throttle(h.throttleLimit))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/tournaments/{tournamentID}", func(r chi.Router) {
		r.Post("/sync", h.handleSync)
		r.Get("/leaderboard", h.handleLeaderboard)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSync accepts one device's batch of offline score edits and returns a
// per-item outcome list the client reconciles against.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err == io.EOF {
			respondError(w, http.StatusBadRequest, "request body is empty")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	callerClaims := h.claims.ResolveClaims(r)
	deviceID := callerClaims.DeviceID
	if deviceID == "" {
		deviceID = req.DeviceID
	}
	recordedBy := callerClaims.RecordedBy
	if recordedBy == "" {
		recordedBy = req.PlayerID
	}

	edits := make([]*sync.ScoreEdit, 0, len(req.Scores))
	for _, score := range req.Scores {
		if score == nil {
			continue
		}
		playerID := score.PlayerID
		if playerID == "" {
			playerID = req.PlayerID
		}
		edits = append(edits, &sync.ScoreEdit{
			ID:                score.ID,
			PlayerID:          playerID,
			Round:             score.Round,
			Hole:              score.Hole,
			Strokes:           score.Strokes,
			Putts:             score.Putts,
			PenaltyStrokes:    score.PenaltyStrokes,
			FairwayHit:        score.FairwayHit,
			GreenInRegulation: score.GreenInRegulation,
			SandSave:          score.SandSave,
			UpAndDown:         score.UpAndDown,
			UpdatedAt:         score.UpdatedAt,
			BaseUpdatedAt:     score.BaseUpdatedAt,
		})
	}

	out, err := h.syncService.SyncBatch(r.Context(), &sync.SyncBatchInput{
		TournamentID: tournamentID,
		DeviceID:     deviceID,
		RecordedBy:   recordedBy,
		IsOfficial:   callerClaims.IsOfficial,
		Scores:       edits,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	results := make([]*wireSyncResult, 0, len(out.Results))
	for _, result := range out.Results {
		results = append(results, &wireSyncResult{
			ID:           result.ID,
			Status:       string(result.Status),
			Entity:       "score",
			ServerData:   result.ServerData,
			ErrorMessage: result.ErrorMessage,
		})
	}

	respondJSON(w, http.StatusOK, &syncResponse{
		Results:         results,
		ServerTimestamp: out.ServerTimestamp,
	})
}

// handleLeaderboard serves a ranked leaderboard view for one tournament,
// optionally narrowed to a format, flight or round.
func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")

	round := 0
	if raw := r.URL.Query().Get("round"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "round must be a number")
			return
		}
		round = parsed
	}

	out, err := h.scoringService.GetLeaderboard(r.Context(), &scoring.GetLeaderboardInput{
		TournamentID: tournamentID,
		Format:       models.Format(r.URL.Query().Get("format")),
		FlightID:     r.URL.Query().Get("flightId"),
		Round:        round,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	entries := make([]*wireLeaderboardEntry, 0, len(out.Entries))
	for _, entry := range out.Entries {
		entries = append(entries, &wireLeaderboardEntry{
			Position:    entry.Position,
			PlayerID:    entry.PlayerID,
			PlayerName:  entry.PlayerName,
			Handicap:    entry.Handicap,
			Total:       entry.Total,
			Points:      entry.Points,
			ToPar:       entry.ToPar,
			HolesPlayed: entry.HolesPlayed,
			RoundScores: entry.RoundScores,
			Status:      entry.Status,
			FlightName:  entry.FlightName,
		})
	}

	respondJSON(w, http.StatusOK, &leaderboardResponse{
		TournamentID:   out.Tournament.ID,
		TournamentName: out.Tournament.Name,
		Format:         out.Format,
		CourseName:     out.Tournament.CourseName,
		LastUpdated:    out.LastUpdated,
		Leaderboard:    entries,
		RoundInfo: roundInfo{
			Rounds:        out.Tournament.Rounds,
			Round:         round,
			HolesPerRound: out.Tournament.HolesPerRound(),
		},
	})
}

// respondServiceError maps service sentinels to HTTP statuses
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sync.ErrTournamentNotFound),
		errors.Is(err, scoring.ErrTournamentNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sync.ErrEmptyBatch),
		errors.Is(err, scoring.ErrUnsupportedFormat),
		errors.Is(err, scoring.ErrInvalidRound):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &errorResponse{Error: message})
}
