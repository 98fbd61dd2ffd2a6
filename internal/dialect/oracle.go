package dialect

import "fmt"

// OracleDialect implements the generic subset only.
type OracleDialect struct{}

func (d *OracleDialect) Vendor() string {
	return "oracle"
}

func (d *OracleDialect) QuoteName(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) MaxNameLength() int {
	return 128
}

func (d *OracleDialect) DSN(p ConnParams) string {
	return fmt.Sprintf("oracle://%s:%s@%s/%s", p.User, p.Password, p.Host, p.Database)
}

func (d *OracleDialect) GetTablesQuery(schema string) string {
	// USER_TABLES lists tables owned by the current user; the dummy clause
	// consumes the schema argument passed by generic callers.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL ORDER BY TABLE_NAME`
}

func (d *OracleDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT c.CONSTRAINT_NAME, c.TABLE_NAME, r.TABLE_NAME AS REF_TABLE ` +
		`FROM USER_CONSTRAINTS c ` +
		`JOIN USER_CONSTRAINTS r ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME ` +
		`WHERE c.CONSTRAINT_TYPE = 'R' AND :1 IS NOT NULL ORDER BY c.CONSTRAINT_NAME`
}

func (d *OracleDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
