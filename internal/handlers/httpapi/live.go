package httpapi

import (
	"net/http"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/career"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/gameclock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/lineup"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/scoring"
	"github.com/go-chi/chi/v5"
)

type recordEventRequest struct {
	PlayerID string `json:"playerId"`
	TeamSide string `json:"teamSide"`
	Type     string `json:"type"`
}

type commitLineupsRequest struct {
	Home []string `json:"home"`
	Away []string `json:"away"`
}

type clockActionRequest struct {
	Seconds int    `json:"seconds,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type timeoutRequest struct {
	TeamSide string `json:"teamSide"`
}

// RecordEvent records a stat event against a game
func (h *Handlers) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req recordEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	side, ok := parseTeamSide(req.TeamSide)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "teamSide must be home or away"})
		return
	}

	output, err := h.scoringService.RecordEvent(r.Context(), &scoring.RecordEventInput{
		GameID:   chi.URLParam(r, "gameID"),
		PlayerID: req.PlayerID,
		TeamSide: side,
		Type:     models.EventType(req.Type),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output)
}

// UndoLast removes the most recent event from a game's log
func (h *Handlers) UndoLast(w http.ResponseWriter, r *http.Request) {
	output, err := h.scoringService.UndoLast(r.Context(), &scoring.UndoLastInput{
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

// GetBoxScore returns the derived box score for a game
func (h *Handlers) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	output, err := h.scoringService.GetBoxScore(r.Context(), &scoring.GetBoxScoreInput{
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.BoxScore)
}

// GetEventLog returns a game's event log with display labels
func (h *Handlers) GetEventLog(w http.ResponseWriter, r *http.Request) {
	output, err := h.scoringService.GetEventLog(r.Context(), &scoring.GetEventLogInput{
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Entries)
}

// CommitLineups validates and persists both teams' on-court fives
func (h *Handlers) CommitLineups(w http.ResponseWriter, r *http.Request) {
	var req commitLineupsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.lineupService.CommitLineups(r.Context(), &lineup.CommitLineupsInput{
		GameID: chi.URLParam(r, "gameID"),
		Home:   req.Home,
		Away:   req.Away,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Game)
}

// ClockAction dispatches a clock state transition by action name
func (h *Handlers) ClockAction(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req clockActionRequest
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	ctx := r.Context()

	switch chi.URLParam(r, "action") {
	case "start":
		output, err := h.clockService.StartGame(ctx, &gameclock.StartGameInput{GameID: gameID})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output.Game)

	case "pause":
		output, err := h.clockService.PauseClock(ctx, &gameclock.PauseClockInput{GameID: gameID})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output.Game)

	case "resume":
		output, err := h.clockService.ResumeClock(ctx, &gameclock.ResumeClockInput{GameID: gameID})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output.Game)

	case "advance":
		output, err := h.clockService.AdvanceClock(ctx, &gameclock.AdvanceClockInput{
			GameID:  gameID,
			Seconds: req.Seconds,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output)

	case "next-period":
		output, err := h.clockService.AdvancePeriod(ctx, &gameclock.AdvancePeriodInput{GameID: gameID})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output)

	case "shot-clock":
		output, err := h.clockService.ResetShotClock(ctx, &gameclock.ResetShotClockInput{
			GameID: gameID,
			Reason: gameclock.ShotClockResetReason(req.Reason),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, output.Game)

	default:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown clock action"})
	}
}

// CallTimeout charges a timeout to one team
func (h *Handlers) CallTimeout(w http.ResponseWriter, r *http.Request) {
	var req timeoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	side, ok := parseTeamSide(req.TeamSide)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "teamSide must be home or away"})
		return
	}

	output, err := h.clockService.CallTimeout(r.Context(), &gameclock.CallTimeoutInput{
		GameID:   chi.URLParam(r, "gameID"),
		TeamSide: side,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

// FinalizeGame folds the finished game into career and team records
func (h *Handlers) FinalizeGame(w http.ResponseWriter, r *http.Request) {
	output, err := h.careerService.FinalizeGame(r.Context(), &career.FinalizeGameInput{
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}
