package dialect

import (
	"fmt"
	"strings"
)

// BulkInsertSQL builds a multi-row INSERT whose generated values are
// harvested from the statement's own OUTPUT clause. Session-global "last
// identity" state is never consulted; it is unreliable under batched
// multi-row inserts. Returning columns are listed in the same order as
// their insert columns. Value slots use the caller-side %s marker the
// adapter rewrites at execution time.
func (d *MSSQLDialect) BulkInsertSQL(table string, columns []string, rows int, returning []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.QuoteName(c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s)", d.QuoteName(table), strings.Join(quoted, ", "))
	if len(returning) > 0 {
		b.WriteString(" ")
		b.WriteString(d.outputClause(returning))
	}
	b.WriteString(" VALUES ")
	row := "(" + GeneratePlaceholders(len(columns), func(int) string { return TemplateMarker }) + ")"
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row)
	}
	return b.String()
}

func (d *MSSQLDialect) outputClause(returning []string) string {
	outs := make([]string, len(returning))
	for i, c := range returning {
		outs[i] = "INSERTED." + d.QuoteName(c)
	}
	return "OUTPUT " + strings.Join(outs, ", ")
}

// WrapIdentityInsert brackets an insert that supplies an explicit value
// for an identity column with the override toggle. The three parts form
// one combined batch, never three round trips, so no concurrent statement
// on the same connection observes the override enabled longer than the
// insert itself.
//
// The override is not re-disabled when the insert fails mid-batch;
// compensating cleanup belongs to the caller.
func (d *MSSQLDialect) WrapIdentityInsert(table, insertSQL string) string {
	q := d.QuoteName(table)
	return fmt.Sprintf("SET IDENTITY_INSERT %s ON; %s; SET IDENTITY_INSERT %s OFF", q, insertSQL, q)
}

// DefaultValuesInsertSQL inserts n rows consisting entirely of column
// defaults. The dialect has no multi-row DEFAULT VALUES syntax, so for
// n > 1 a MERGE over a dummy n-row source with an always-false match
// predicate forces n inserts of all-default rows. Returning columns are
// requested the same way as the ordinary insert path.
func (d *MSSQLDialect) DefaultValuesInsertSQL(table string, n int, returning []string) string {
	q := d.QuoteName(table)
	out := ""
	if len(returning) > 0 {
		out = " " + d.outputClause(returning)
	}
	if n <= 1 {
		return fmt.Sprintf("INSERT INTO %s%s DEFAULT VALUES", q, out)
	}
	vals := make([]string, n)
	for i := range vals {
		vals[i] = "(1)"
	}
	return fmt.Sprintf(
		"MERGE INTO %s USING (VALUES %s) AS _defaults (rn) ON 1 = 0 WHEN NOT MATCHED THEN INSERT DEFAULT VALUES%s;",
		q, strings.Join(vals, ", "), out)
}
