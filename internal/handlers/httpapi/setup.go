package httpapi

import (
	"net/http"

	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/career"
	"github.com/go-chi/chi/v5"
)

type createTeamRequest struct {
	Name string `json:"name"`
}

type createGameRequest struct {
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

type createPersistentPlayerRequest struct {
	Name string `json:"name"`
}

type addPlayerRequest struct {
	TeamID             string `json:"teamId"`
	TeamSide           string `json:"teamSide"`
	Name               string `json:"name"`
	Number             int    `json:"number"`
	PersistentPlayerID string `json:"persistentPlayerId,omitempty"`
}

// CreateTeam creates a new team
func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	output, err := h.teamRepo.CreateTeam(r.Context(), &teamRepo.CreateTeamInput{
		Name: req.Name,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Team)
}

// GetTeam returns a team with its win/loss/tie record
func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamRepo.GetTeam(r.Context(), &teamRepo.GetTeamInput{
		TeamID: chi.URLParam(r, "teamID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

// CreateGame schedules a new game between two teams
func (h *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.HomeTeamID == "" || req.AwayTeamID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "homeTeamId and awayTeamId required"})
		return
	}

	output, err := h.gameRepo.CreateGame(r.Context(), &gameRepo.CreateGameInput{
		HomeTeamID:       req.HomeTeamID,
		AwayTeamID:       req.AwayTeamID,
		PeriodSeconds:    h.rules.PeriodSeconds,
		ShotClockSeconds: h.rules.ShotClockSeconds,
		TimeoutsPerTeam:  h.rules.TimeoutsPerTeam,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Game)
}

// GetGame returns the live game record
func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameRepo.GetGame(r.Context(), &gameRepo.GetGameInput{
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetLiveGames returns all games currently in progress
func (h *Handlers) GetLiveGames(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameRepo.GetLiveGames(r.Context(), &gameRepo.GetLiveGamesInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Games)
}

// CreatePersistentPlayer creates a career record that game rosters can
// link players to
func (h *Handlers) CreatePersistentPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPersistentPlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.careerService.CreatePersistentPlayer(r.Context(), &career.CreatePersistentPlayerInput{
		Name: req.Name,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.PersistentPlayer)
}

// GetPersistentPlayer returns a career record with its accumulated totals
func (h *Handlers) GetPersistentPlayer(w http.ResponseWriter, r *http.Request) {
	output, err := h.careerService.GetPersistentPlayer(r.Context(), &career.GetPersistentPlayerInput{
		PersistentPlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.PersistentPlayer)
}

// AddPlayer adds a player row to a game's roster
func (h *Handlers) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	side, ok := parseTeamSide(req.TeamSide)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "teamSide must be home or away"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	output, err := h.playerRepo.CreatePlayer(r.Context(), &playerRepo.CreatePlayerInput{
		GameID:             chi.URLParam(r, "gameID"),
		TeamID:             req.TeamID,
		TeamSide:           side,
		Name:               req.Name,
		Number:             req.Number,
		PersistentPlayerID: req.PersistentPlayerID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Player)
}
