package httpapi

import (
	"errors"
	"net/http"

	boxscoreRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/boxscore"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/career"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/gameclock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/lineup"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/scoring"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

var notFoundErrors = []error{
	gameRepo.ErrGameNotFound,
	eventRepo.ErrEventNotFound,
	playerRepo.ErrPlayerNotFound,
	playerRepo.ErrPersistentPlayerNotFound,
	teamRepo.ErrTeamNotFound,
	boxscoreRepo.ErrCacheMiss,
}

var validationErrors = []error{
	scoring.ErrPlayerNotOnCourt,
	scoring.ErrInvalidEventType,
	lineup.ErrHomeLineupSize,
	lineup.ErrAwayLineupSize,
	lineup.ErrDuplicatePlayer,
	lineup.ErrPlayerNotOnRoster,
	lineup.ErrPlayerFouledOut,
	gameclock.ErrInvalidSeconds,
	gameclock.ErrUnknownResetReason,
	career.ErrNameRequired,
}

var conflictErrors = []error{
	scoring.ErrGameNotInProgress,
	lineup.ErrGameFinished,
	gameclock.ErrInvalidClockState,
	gameclock.ErrLineupsNotSet,
	gameclock.ErrNoTimeoutsRemaining,
	career.ErrGameNotFinished,
}

// statusForError maps service and repository errors onto HTTP status
// codes: rejected input is 400, missing records are 404, operations
// the game state does not allow are 409
func statusForError(err error) int {
	var unknownType *stats.ErrUnknownEventType
	if errors.As(err, &unknownType) {
		return http.StatusBadRequest
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}
