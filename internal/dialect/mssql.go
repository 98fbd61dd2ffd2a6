package dialect

import (
	"fmt"
	"strings"
)

// MSSQLDialect is the SQL Server dialect. Besides the shared Dialect
// surface it carries the full translation core: temporal arithmetic,
// pagination, pattern matching, the insert pipeline, and savepoints.
//
// The go-mssqldb driver prefers @p1, @p2 positional parameters; the
// adapter rewrites the caller-side %s markers into this form.
type MSSQLDialect struct{}

func (d *MSSQLDialect) Vendor() string {
	return "sqlserver"
}

// QuoteName wraps an identifier in brackets. Quoting is not idempotent:
// quoting an already-quoted name double-wraps it, so callers quote exactly
// once.
func (d *MSSQLDialect) QuoteName(name string) string {
	return fmt.Sprintf("[%s]", name)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) MaxNameLength() int {
	return 128
}

// DSN builds the semicolon-separated connection string the driver expects.
// Empty parameters are omitted.
func (d *MSSQLDialect) DSN(p ConnParams) string {
	var parts []string
	if p.Host != "" {
		parts = append(parts, "server="+p.Host)
	}
	if p.Database != "" {
		parts = append(parts, "database="+p.Database)
	}
	if p.User != "" {
		parts = append(parts, "user id="+p.User)
	}
	if p.Password != "" {
		parts = append(parts, "password="+p.Password)
	}
	return strings.Join(parts, ";")
}

func (d *MSSQLDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

// GetForeignKeysQuery yields (constraint, referencing table, referenced
// table) triples for the whole schema. The flush planner runs this fresh on
// every call; edges are never cached because the schema may change between
// calls.
func (d *MSSQLDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT RC.CONSTRAINT_NAME, KCU1.TABLE_NAME, KCU2.TABLE_NAME AS REF_TABLE ` +
		`FROM INFORMATION_SCHEMA.REFERENTIAL_CONSTRAINTS RC ` +
		`JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU1 ON RC.CONSTRAINT_NAME = KCU1.CONSTRAINT_NAME ` +
		`JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU2 ON RC.UNIQUE_CONSTRAINT_NAME = KCU2.CONSTRAINT_NAME ` +
		`WHERE KCU1.TABLE_SCHEMA = @p1 ORDER BY RC.CONSTRAINT_NAME`
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
