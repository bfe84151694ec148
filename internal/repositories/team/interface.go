package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team Repository

import (
	"context"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// CreateTeam creates a new team with a generated ID
	CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error)

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// SaveTeam persists a team
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// ApplyResult updates both teams' win/loss/tie records for one game
	// result in a single transaction
	ApplyResult(ctx context.Context, input *ApplyResultInput) error
}
