package dialect

import "fmt"

// LimitOffsetSQL emits OFFSET/FETCH pagination for a zero-based half-open
// [lowMark, highMark) window. A nil highMark omits the FETCH clause
// entirely; the dialect has no sentinel for an unbounded count.
func (d *MSSQLDialect) LimitOffsetSQL(lowMark int64, highMark *int64) string {
	if highMark == nil {
		return fmt.Sprintf("OFFSET %d ROWS", lowMark)
	}
	return fmt.Sprintf("OFFSET %d ROWS FETCH FIRST %d ROWS ONLY", lowMark, *highMark-lowMark)
}
