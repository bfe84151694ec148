package career

// CareerError is a custom error type for finalization-related errors
type CareerError string

// Error implements the error interface
func (e CareerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFinished CareerError = "game is not finished"
	ErrNameRequired    CareerError = "player name cannot be empty"
	ErrNilConfig       CareerError = "config cannot be nil"
	ErrNilGameRepo     CareerError = "game repository cannot be nil"
	ErrNilEventRepo    CareerError = "event repository cannot be nil"
	ErrNilPlayerRepo   CareerError = "player repository cannot be nil"
	ErrNilTeamRepo     CareerError = "team repository cannot be nil"
	ErrNilAggregator   CareerError = "aggregator cannot be nil"
	ErrNilClock        CareerError = "clock cannot be nil"
	ErrNilUUID         CareerError = "uuid generator cannot be nil"
)
