package lineup

// LineupError is a custom error type for lineup-related errors
type LineupError string

// Error implements the error interface
func (e LineupError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrHomeLineupSize     LineupError = "home team must have exactly 5 players on court"
	ErrAwayLineupSize     LineupError = "away team must have exactly 5 players on court"
	ErrDuplicatePlayer    LineupError = "a player cannot appear twice in a lineup"
	ErrPlayerNotOnRoster  LineupError = "player is not on this team's roster"
	ErrPlayerFouledOut    LineupError = "player has fouled out and cannot return"
	ErrGameFinished       LineupError = "game is finished"
	ErrNilConfig          LineupError = "config cannot be nil"
	ErrNilGameRepo        LineupError = "game repository cannot be nil"
	ErrNilEventRepo       LineupError = "event repository cannot be nil"
	ErrNilPlayerRepo      LineupError = "player repository cannot be nil"
	ErrNilAggregator      LineupError = "aggregator cannot be nil"
	ErrNilClock           LineupError = "clock cannot be nil"
)
