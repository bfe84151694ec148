package gameclock

// ClockError is a custom error type for clock-related errors
type ClockError string

// Error implements the error interface
func (e ClockError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidClockState   ClockError = "operation not allowed in current clock state"
	ErrLineupsNotSet       ClockError = "both teams need five players on court before tip-off"
	ErrNoTimeoutsRemaining ClockError = "no timeouts remaining"
	ErrInvalidSeconds      ClockError = "seconds must be positive"
	ErrUnknownResetReason  ClockError = "unknown shot clock reset reason"
	ErrNilConfig           ClockError = "config cannot be nil"
	ErrNilGameRepo         ClockError = "game repository cannot be nil"
	ErrNilClock            ClockError = "clock cannot be nil"
)
