package scoring

// ScoringError is a custom error type for scoring-related errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotInProgress ScoringError = "game is not in progress"
	ErrPlayerNotOnCourt  ScoringError = "player is not on the court"
	ErrInvalidEventType  ScoringError = "invalid event type"
	ErrNilConfig         ScoringError = "config cannot be nil"
	ErrNilGameRepo       ScoringError = "game repository cannot be nil"
	ErrNilEventRepo      ScoringError = "event repository cannot be nil"
	ErrNilBoxScoreRepo   ScoringError = "box score repository cannot be nil"
	ErrNilAggregator     ScoringError = "aggregator cannot be nil"
	ErrNilClock          ScoringError = "clock cannot be nil"
)
