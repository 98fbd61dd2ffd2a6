package dialect

// Session carries the per-connection settings the translators depend on.
// These are applied once at connection open via plain SET statements and
// threaded explicitly through every call that needs them; none of them is
// global mutable state.
type Session struct {
	// Language is the SET LANGUAGE value, empty to leave the server default.
	Language string
	// DateFirst is the SET DATEFIRST value (1=Monday .. 7=Sunday).
	// The server default is 7.
	DateFirst int
	// WeekStart is the locale week start day (1=Monday .. 7=Sunday) used
	// by week truncation.
	WeekStart int
	// TimeZone names the zone stored timestamps are interpreted in.
	TimeZone string
	// UseTZ enables zone-aware timestamp shifting.
	UseTZ bool
}

// DefaultSession matches a freshly opened connection with no options set.
func DefaultSession() Session {
	return Session{DateFirst: 7, WeekStart: 1, TimeZone: "UTC"}
}

// FirstDayOffset folds the session DATEFIRST setting and the locale week
// start into the additive constant of the week-truncation formula
// (weekday + offset + 5) mod 7, which yields the number of days between a
// timestamp and the start of its week under the session's DATEPART(WEEKDAY)
// numbering.
func (s Session) FirstDayOffset() int {
	return ((s.DateFirst-s.WeekStart+1)%7 + 7) % 7
}
