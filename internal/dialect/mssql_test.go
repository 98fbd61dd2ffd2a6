package dialect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestQuoteName(t *testing.T) {
	d := &MSSQLDialect{}
	if got := d.QuoteName("Foo"); got != "[Foo]" {
		t.Errorf("QuoteName = %q", got)
	}
	// Quoting is applied exactly once by callers: re-quoting double-wraps.
	if got := d.QuoteName(d.QuoteName("Foo")); got != "[[Foo]]" {
		t.Errorf("double QuoteName = %q", got)
	}

	faker := gofakeit.New(42)
	for i := 0; i < 20; i++ {
		name := faker.Word()
		got := d.QuoteName(name)
		if got != "["+name+"]" {
			t.Fatalf("QuoteName(%q) = %q", name, got)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	d := &MSSQLDialect{}
	for i := 0; i < 5; i++ {
		want := fmt.Sprintf("@p%d", i+1)
		if got := d.Placeholder(i); got != want {
			t.Errorf("Placeholder(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestMaxNameLength(t *testing.T) {
	d := &MSSQLDialect{}
	if d.MaxNameLength() != 128 {
		t.Errorf("MaxNameLength = %d", d.MaxNameLength())
	}
}

func TestDSN(t *testing.T) {
	d := &MSSQLDialect{}
	got := d.DSN(ConnParams{Host: "db01", Database: "app", User: "svc", Password: "hunter2"})
	want := "server=db01;database=app;user id=svc;password=hunter2"
	if got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}

	// Empty parameters are omitted.
	got = d.DSN(ConnParams{Host: "db01", Database: "app"})
	if got != "server=db01;database=app" {
		t.Errorf("DSN = %q", got)
	}
}

func TestLimitOffsetSQL(t *testing.T) {
	d := &MSSQLDialect{}

	high := int64(20)
	if got := d.LimitOffsetSQL(10, &high); got != "OFFSET 10 ROWS FETCH FIRST 10 ROWS ONLY" {
		t.Errorf("LimitOffsetSQL(10, 20) = %q", got)
	}

	// No upper bound: the FETCH clause is omitted entirely.
	if got := d.LimitOffsetSQL(0, nil); got != "OFFSET 0 ROWS" {
		t.Errorf("LimitOffsetSQL(0, nil) = %q", got)
	}
}

func TestSavepointSQL(t *testing.T) {
	d := &MSSQLDialect{}
	if got := d.SavepointCreateSQL("sp1"); got != "SAVE TRANSACTION [sp1]" {
		t.Errorf("SavepointCreateSQL = %q", got)
	}
	// Committing a savepoint and rolling back to it are the same
	// operation on this dialect.
	if d.SavepointCommitSQL("sp1") != d.SavepointRollbackSQL("sp1") {
		t.Error("savepoint commit and rollback must emit the same statement")
	}
	if got := d.SavepointRollbackSQL("sp1"); got != "ROLLBACK TRANSACTION [sp1]" {
		t.Errorf("SavepointRollbackSQL = %q", got)
	}
}

func TestDataType(t *testing.T) {
	d := &MSSQLDialect{}
	got, err := d.DataType("BigAutoField")
	if err != nil {
		t.Fatal(err)
	}
	if got != "bigint identity(1,1)" {
		t.Errorf("DataType(BigAutoField) = %q", got)
	}
	if _, err := d.DataType("HologramField"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}

func TestOperatorSQL(t *testing.T) {
	d := &MSSQLDialect{}
	got, err := d.OperatorSQL("iexact")
	if err != nil {
		t.Fatal(err)
	}
	if got != "= UPPER(%s)" {
		t.Errorf("OperatorSQL(iexact) = %q", got)
	}
	if _, err := d.OperatorSQL("overlaps"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}

func TestGet(t *testing.T) {
	for _, driver := range []string{"sqlserver", "mssql", "postgres", "mysql", "oracle"} {
		if _, err := Get(driver); err != nil {
			t.Errorf("Get(%q) error: %v", driver, err)
		}
	}
	if _, err := Get("sybase"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}

func TestGetSchemaName(t *testing.T) {
	d := &MSSQLDialect{}
	if d.GetSchemaName("") != "dbo" {
		t.Error("empty schema must resolve to dbo")
	}
	if d.GetSchemaName("sales") != "sales" {
		t.Error("explicit schema must pass through")
	}
}
