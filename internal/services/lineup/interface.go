package lineup

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/McKeyra/ball-in-the-6-sub004/internal/services/lineup Service

import "context"

// Service defines the interface for lineup management. Drafts are
// in-memory only; nothing is persisted until CommitLineups succeeds.
type Service interface {
	// Toggle adds or removes a player ID in a draft set without
	// touching persistence
	Toggle(input *ToggleInput) *ToggleOutput

	// CommitLineups validates and persists both teams' on-court sets
	// in a single write
	CommitLineups(ctx context.Context, input *CommitLineupsInput) (*CommitLineupsOutput, error)
}
