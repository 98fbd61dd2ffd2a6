package dialect

import "fmt"

// SavepointCreateSQL marks a named point inside the current transaction.
func (d *MSSQLDialect) SavepointCreateSQL(sid string) string {
	return fmt.Sprintf("SAVE TRANSACTION %s", d.QuoteName(sid))
}

// SavepointCommitSQL releases a savepoint. The dialect has no true
// release-without-rollback of a sub-transaction, so committing a savepoint
// is the same operation as rolling back to it. Work saved before the
// savepoint cannot be preserved independently of work after it.
func (d *MSSQLDialect) SavepointCommitSQL(sid string) string {
	return fmt.Sprintf("ROLLBACK TRANSACTION %s", d.QuoteName(sid))
}

// SavepointRollbackSQL rolls the transaction back to a savepoint.
func (d *MSSQLDialect) SavepointRollbackSQL(sid string) string {
	return fmt.Sprintf("ROLLBACK TRANSACTION %s", d.QuoteName(sid))
}
