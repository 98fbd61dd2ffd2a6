package dialect

import (
	"fmt"
	"regexp"
	"time"
)

var fixedOffsetRe = regexp.MustCompile(`^UTC([+-])(\d{1,2}):(\d{2})$`)

// OffsetSeconds computes the signed second offset of a zone from UTC
// without consulting the database's time-zone catalog (the target dialect
// has none). Two forms are accepted: a fixed-offset specifier
// ("UTC+05:30") and a named zone ("Europe/Berlin"), resolved to its offset
// at the current instant. Named zones deliberately do not account for the
// daylight-saving status of each individual timestamp; this is a known
// limitation, kept as-is.
func OffsetSeconds(zone string) (int, error) {
	if zone == "" || zone == "UTC" {
		return 0, nil
	}
	if m := fixedOffsetRe.FindStringSubmatch(zone); m != nil {
		var hours, minutes int
		fmt.Sscanf(m[2], "%d", &hours)
		fmt.Sscanf(m[3], "%d", &minutes)
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return offset, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("unknown time zone %q: %w", zone, err)
	}
	_, offset := time.Now().In(loc).Zone()
	return offset, nil
}

// TimezoneConvertSQL shifts a stored timestamp (interpreted in the
// session's configured zone) into the requested zone. The field passes
// through unchanged when zone-awareness is off or the zones match.
func (d *MSSQLDialect) TimezoneConvertSQL(fieldExpr, zone string, sess Session) (string, error) {
	if !sess.UseTZ || zone == "" || zone == sess.TimeZone {
		return fieldExpr, nil
	}
	target, err := OffsetSeconds(zone)
	if err != nil {
		return "", err
	}
	stored, err := OffsetSeconds(sess.TimeZone)
	if err != nil {
		return "", err
	}
	delta := target - stored
	if delta == 0 {
		return fieldExpr, nil
	}
	return fmt.Sprintf("DATEADD(SECOND, %d, %s)", delta, fieldExpr), nil
}
