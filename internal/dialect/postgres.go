package dialect

import (
	"fmt"
	"strings"
)

// PostgresDialect implements the generic subset only; the translation core
// is SQL Server specific.
type PostgresDialect struct{}

func (d *PostgresDialect) Vendor() string {
	return "postgres"
}

func (d *PostgresDialect) QuoteName(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) MaxNameLength() int {
	return 63
}

func (d *PostgresDialect) DSN(p ConnParams) string {
	var parts []string
	if p.Host != "" {
		parts = append(parts, "host="+p.Host)
	}
	if p.Database != "" {
		parts = append(parts, "dbname="+p.Database)
	}
	if p.User != "" {
		parts = append(parts, "user="+p.User)
	}
	if p.Password != "" {
		parts = append(parts, "password="+p.Password)
	}
	return strings.Join(parts, " ")
}

func (d *PostgresDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *PostgresDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT tc.constraint_name, kcu.table_name, ccu.table_name AS ref_table ` +
		`FROM information_schema.table_constraints tc ` +
		`JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name ` +
		`JOIN information_schema.constraint_column_usage ccu ON tc.constraint_name = ccu.constraint_name ` +
		`WHERE tc.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY' ORDER BY tc.constraint_name`
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
