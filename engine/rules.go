package engine

// Rules holds the configurable speed parameters of a session. Board
// dimensions are compile-time constants and deliberately not part of it.
type Rules struct {
	InitialTickMs uint16 // gravity interval at reset
	TickStepMs    uint16 // interval decrease per lock that clears rows
	MinTickMs     uint16 // lower bound on the interval
}

// DefaultRules returns the standard speed parameters.
func DefaultRules() Rules {
	return Rules{
		InitialTickMs: 500,
		TickStepMs:    20,
		MinTickMs:     100,
	}
}

// initialTickMs returns the effective starting interval, treating a zero
// value as the default so that a zero Rules struct still yields a
// playable session.
func (r *Rules) initialTickMs() uint16 {
	if r.InitialTickMs == 0 {
		return DefaultRules().InitialTickMs
	}
	return r.InitialTickMs
}
