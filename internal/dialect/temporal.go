package dialect

import "fmt"

// Calendar units accepted by DateTruncSQL. Requesting anything outside this
// set is a caller contract violation, not a missing feature.
const (
	UnitYear    = "year"
	UnitQuarter = "quarter"
	UnitMonth   = "month"
	UnitWeek    = "week"
	UnitDay     = "day"
	UnitHour    = "hour"
	UnitMinute  = "minute"
	UnitSecond  = "second"
)

const (
	microsPerSecond int64 = 1_000_000
	microsPerMinute       = 60 * microsPerSecond
	microsPerHour         = 60 * microsPerMinute
	microsPerDay          = 24 * microsPerHour
)

// DateTruncSQL returns an expression truncating fieldExpr to the given
// calendar unit. The dialect has no calendar truncation function, so every
// unit is closed-form DATEADD/DATEPART arithmetic. Literal percent
// characters are doubled so the fragment survives the adapter's marker
// rewrite pass unchanged.
func (d *MSSQLDialect) DateTruncSQL(unit, fieldExpr string, sess Session) (string, error) {
	switch unit {
	case UnitYear:
		return fmt.Sprintf("CAST(DATEADD(DAY, 1 - DATEPART(DAYOFYEAR, %s), %s) AS DATE)",
			fieldExpr, fieldExpr), nil
	case UnitQuarter:
		// Floor to day 1 before shifting months: day 1 can never be
		// clamped by a shorter target month.
		dayFloor := fmt.Sprintf("DATEADD(DAY, 1 - DATEPART(DAY, %s), %s)", fieldExpr, fieldExpr)
		return fmt.Sprintf("CAST(DATEADD(MONTH, -((DATEPART(MONTH, %s) - 1) %%%% 3), %s) AS DATE)",
			fieldExpr, dayFloor), nil
	case UnitMonth:
		return fmt.Sprintf("CAST(DATEADD(DAY, 1 - DATEPART(DAY, %s), %s) AS DATE)",
			fieldExpr, fieldExpr), nil
	case UnitWeek:
		return fmt.Sprintf("CAST(DATEADD(DAY, -((DATEPART(WEEKDAY, %s) + %d) %%%% 7), %s) AS DATE)",
			fieldExpr, sess.FirstDayOffset()+5, fieldExpr), nil
	case UnitDay:
		return fmt.Sprintf("CAST(%s AS DATE)", fieldExpr), nil
	case UnitHour, UnitMinute, UnitSecond:
		return truncateTimeParts(unit, fieldExpr), nil
	}
	return "", fmt.Errorf("truncation to %q: %w", unit, ErrNotSupported)
}

// truncateTimeParts zeroes components finer than unit by successive
// subtraction. Each step clears only fields strictly finer than the ones
// already cleared, so every DATEPART can read from the original expression
// and the chain stays linear in size.
func truncateTimeParts(unit, fieldExpr string) string {
	parts := []string{"MICROSECOND"}
	switch unit {
	case UnitMinute:
		parts = append(parts, "SECOND")
	case UnitHour:
		parts = append(parts, "SECOND", "MINUTE")
	}
	expr := fieldExpr
	for _, p := range parts {
		expr = fmt.Sprintf("DATEADD(%s, -DATEPART(%s, %s), %s)", p, p, fieldExpr, expr)
	}
	return expr
}

// DecomposeMicros splits a whole-microsecond duration into hour, minute,
// second and microsecond components. DATEADD accepts only 32-bit
// magnitudes; a single DATEADD(MICROSECOND, total, x) would silently
// overflow for durations beyond roughly 24 days.
func DecomposeMicros(total int64) (hours, minutes, seconds, micros int64) {
	micros = total % microsPerSecond
	rest := total / microsPerSecond
	seconds = rest % 60
	rest /= 60
	minutes = rest % 60
	hours = rest / 60
	return hours, minutes, seconds, micros
}

// CombineDurationSQL adds or subtracts a runtime duration expression
// (whole microseconds) to a datetime expression. The operand value is not
// known at translation time, so the 32-bit-safe decomposition happens in
// SQL via successive division and modulo; the connector sign applies
// uniformly to every decomposed term.
func (d *MSSQLDialect) CombineDurationSQL(connector, lhs, durExpr string) (string, error) {
	sign, err := connectorSign(connector)
	if err != nil {
		return "", err
	}
	expr := fmt.Sprintf("DATEADD(MICROSECOND, %s(%s %%%% 1000000), %s)", sign, durExpr, lhs)
	expr = fmt.Sprintf("DATEADD(SECOND, %s((%s / 1000000) %%%% 60), %s)", sign, durExpr, expr)
	expr = fmt.Sprintf("DATEADD(MINUTE, %s((%s / 60000000) %%%% 60), %s)", sign, durExpr, expr)
	expr = fmt.Sprintf("DATEADD(HOUR, %s(%s / 3600000000), %s)", sign, durExpr, expr)
	return expr, nil
}

// FixedDurationSQL handles duration operands known at translation time,
// where the simpler day/second/microsecond decomposition can be computed
// here instead of in SQL. Zero components are omitted.
func (d *MSSQLDialect) FixedDurationSQL(connector, lhs string, totalMicros int64) (string, error) {
	sign, err := connectorSign(connector)
	if err != nil {
		return "", err
	}
	mult := int64(1)
	if sign == "-" {
		mult = -1
	}
	days := totalMicros / microsPerDay
	rest := totalMicros % microsPerDay
	seconds := rest / microsPerSecond
	micros := rest % microsPerSecond

	expr := lhs
	if micros != 0 {
		expr = fmt.Sprintf("DATEADD(MICROSECOND, %d, %s)", mult*micros, expr)
	}
	if seconds != 0 {
		expr = fmt.Sprintf("DATEADD(SECOND, %d, %s)", mult*seconds, expr)
	}
	if days != 0 {
		expr = fmt.Sprintf("DATEADD(DAY, %d, %s)", mult*days, expr)
	}
	return expr, nil
}

func connectorSign(connector string) (string, error) {
	switch connector {
	case "+":
		return "", nil
	case "-":
		return "-", nil
	}
	return "", fmt.Errorf("duration connector %q: %w", connector, ErrNotSupported)
}
