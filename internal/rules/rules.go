package rules

// Ruleset holds the timing and foul rules the engine enforces. The
// engine never hardcodes these values; leagues configure their own.
type Ruleset struct {
	// PeriodCount is the number of periods in a regulation game
	PeriodCount int

	// PeriodSeconds is the length of one period in seconds
	PeriodSeconds int

	// ShotClockSeconds is the full shot clock value
	ShotClockSeconds int

	// ShotClockShortSeconds is the reduced reset used after an
	// offensive rebound
	ShotClockShortSeconds int

	// BonusThreshold is the period team foul count at which the
	// opposing team enters the bonus
	BonusThreshold int

	// FoulOutLimit is the personal foul count at which a player becomes
	// ineligible for further on-court assignment
	FoulOutLimit int

	// TimeoutsPerTeam is the number of timeouts each team starts with
	TimeoutsPerTeam int

	// PlayersOnCourt is the required on-court lineup size per team
	PlayersOnCourt int
}

// Default returns an NBA-style ruleset
func Default() *Ruleset {
	return &Ruleset{
		PeriodCount:           4,
		PeriodSeconds:         720,
		ShotClockSeconds:      24,
		ShotClockShortSeconds: 14,
		BonusThreshold:        5,
		FoulOutLimit:          6,
		TimeoutsPerTeam:       7,
		PlayersOnCourt:        5,
	}
}
