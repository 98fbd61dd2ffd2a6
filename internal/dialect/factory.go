package dialect

import "fmt"

// Get returns the Dialect implementation for a driver identifier.
func Get(driver string) (Dialect, error) {
	switch driver {
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	case "postgres":
		return &PostgresDialect{}, nil
	case "mysql":
		return &MysqlDialect{}, nil
	case "oracle":
		return &OracleDialect{}, nil
	default:
		return nil, fmt.Errorf("driver %q: %w", driver, ErrNotSupported)
	}
}

// Ensure interface implementation
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
