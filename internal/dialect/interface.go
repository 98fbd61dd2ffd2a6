package dialect

// ConnParams holds the connection parameters assembled upstream into a
// driver connection string.
type ConnParams struct {
	Host     string
	Database string
	User     string
	Password string
}

// Dialect abstracts the vendor-specific SQL surface shared by every
// supported database. The SQL Server dialect additionally carries the full
// translation core (temporal arithmetic, pagination, insert pipeline, ...)
// as concrete methods on MSSQLDialect.
type Dialect interface {
	// Vendor returns the driver identifier ("sqlserver", "postgres", ...).
	Vendor() string

	// QuoteName quotes a single identifier. Quoting is applied exactly
	// once; re-quoting an already quoted name double-wraps it.
	QuoteName(name string) string

	// Placeholder returns the driver's native positional marker for the
	// given zero-based index (@p1, $1, ?, :1).
	Placeholder(index int) string

	// MaxNameLength is the vendor's identifier length limit.
	MaxNameLength() int

	// DSN assembles a driver connection string from connection parameters.
	DSN(p ConnParams) string

	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) string
	GetForeignKeysQuery(schema string) string

	// GetSchemaName resolves an empty schema to the vendor default.
	GetSchemaName(input string) string
}
