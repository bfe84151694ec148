package gameclock

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/McKeyra/ball-in-the-6-sub004/internal/services/gameclock Service

import "context"

// Service defines the interface for clock and period operations. The
// clock advances independently of scoring events; both mutate the same
// game record but never each other's fields.
type Service interface {
	// StartGame begins the first period at tip-off
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// PauseClock stops a running clock for a manual stoppage
	PauseClock(ctx context.Context, input *PauseClockInput) (*PauseClockOutput, error)

	// ResumeClock restarts a paused clock
	ResumeClock(ctx context.Context, input *ResumeClockInput) (*ResumeClockOutput, error)

	// AdvanceClock runs seconds off a running clock; reaching zero
	// forces the period break
	AdvanceClock(ctx context.Context, input *AdvanceClockInput) (*AdvanceClockOutput, error)

	// AdvancePeriod begins the next period after a break, or ends the
	// game after the final period
	AdvancePeriod(ctx context.Context, input *AdvancePeriodInput) (*AdvancePeriodOutput, error)

	// CallTimeout charges a timeout to one team and pauses the clock
	CallTimeout(ctx context.Context, input *CallTimeoutInput) (*CallTimeoutOutput, error)

	// ResetShotClock resets the shot clock for a possession change
	ResetShotClock(ctx context.Context, input *ResetShotClockInput) (*ResetShotClockOutput, error)
}
