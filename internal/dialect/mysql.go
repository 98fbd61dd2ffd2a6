package dialect

import "fmt"

// MysqlDialect implements the generic subset only.
type MysqlDialect struct{}

func (d *MysqlDialect) Vendor() string {
	return "mysql"
}

func (d *MysqlDialect) QuoteName(name string) string {
	return fmt.Sprintf("`%s`", name)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) MaxNameLength() int {
	return 64
}

func (d *MysqlDialect) DSN(p ConnParams) string {
	// user:pass@tcp(host)/dbname
	cred := p.User
	if p.Password != "" {
		cred += ":" + p.Password
	}
	return fmt.Sprintf("%s@tcp(%s)/%s", cred, p.Host, p.Database)
}

func (d *MysqlDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MysqlDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT CONSTRAINT_NAME, TABLE_NAME, REFERENCED_TABLE_NAME ` +
		`FROM information_schema.KEY_COLUMN_USAGE ` +
		`WHERE TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME IS NOT NULL ORDER BY CONSTRAINT_NAME`
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
