package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/career"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/gameclock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/lineup"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/scoring"
	"github.com/go-chi/chi/v5"
)

// Config holds the handler's service and repository dependencies
type Config struct {
	// Rules seeds new games with clock and timeout settings
	Rules *rules.Ruleset

	// Service dependencies
	ScoringService scoring.Service
	ClockService   gameclock.Service
	LineupService  lineup.Service
	CareerService  career.Service

	// Repository dependencies for game and roster setup
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	TeamRepo   teamRepo.Repository
}

// Handlers holds API handler dependencies
type Handlers struct {
	rules          *rules.Ruleset
	scoringService scoring.Service
	clockService   gameclock.Service
	lineupService  lineup.Service
	careerService  career.Service
	gameRepo       gameRepo.Repository
	playerRepo     playerRepo.Repository
	teamRepo       teamRepo.Repository
}

// NewHandlers creates a new API handlers instance
func NewHandlers(cfg *Config) (*Handlers, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ScoringService == nil || cfg.ClockService == nil || cfg.LineupService == nil || cfg.CareerService == nil {
		return nil, errors.New("all services are required")
	}

	if cfg.GameRepo == nil || cfg.PlayerRepo == nil || cfg.TeamRepo == nil {
		return nil, errors.New("all repositories are required")
	}

	rs := cfg.Rules
	if rs == nil {
		rs = rules.Default()
	}

	return &Handlers{
		rules:          rs,
		scoringService: cfg.ScoringService,
		clockService:   cfg.ClockService,
		lineupService:  cfg.LineupService,
		careerService:  cfg.CareerService,
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		teamRepo:       cfg.TeamRepo,
	}, nil
}

// RegisterRoutes registers API routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/teams", h.CreateTeam)
	r.Get("/teams/{teamID}", h.GetTeam)

	r.Post("/players", h.CreatePersistentPlayer)
	r.Get("/players/{playerID}", h.GetPersistentPlayer)

	r.Post("/games", h.CreateGame)
	r.Get("/games", h.GetLiveGames)

	r.Route("/games/{gameID}", func(r chi.Router) {
		r.Get("/", h.GetGame)
		r.Post("/players", h.AddPlayer)
		r.Get("/boxscore", h.GetBoxScore)
		r.Get("/events", h.GetEventLog)
		r.Post("/events", h.RecordEvent)
		r.Delete("/events/last", h.UndoLast)
		r.Post("/lineups", h.CommitLineups)
		r.Post("/clock/{action}", h.ClockAction)
		r.Post("/timeouts", h.CallTimeout)
		r.Post("/finalize", h.FinalizeGame)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error with the status the error maps to
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), map[string]string{
		"error": err.Error(),
	})
}

// decodeBody decodes a JSON request body, rejecting malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return false
	}
	return true
}

// parseTeamSide validates a team side string from a request body
func parseTeamSide(s string) (models.TeamSide, bool) {
	side := models.TeamSide(s)
	if side != models.TeamSideHome && side != models.TeamSideAway {
		return "", false
	}
	return side, true
}
