package dialect

import (
	"errors"
	"strings"
	"testing"
)

func TestPatternEscapeSQLOrder(t *testing.T) {
	d := &MSSQLDialect{}
	got := d.PatternEscapeSQL("term")

	want := `REPLACE(REPLACE(REPLACE(term, '\', '\\'), '%%', '\%%'), '_', '\_')`
	if got != want {
		t.Fatalf("PatternEscapeSQL = %q, want %q", got, want)
	}

	// The escape character replacement must be innermost, i.e. run first;
	// otherwise the backslashes it introduces would re-escape the
	// wildcard replacements.
	backslash := strings.Index(got, `'\', '\\'`)
	percent := strings.Index(got, `'%%', '\%%'`)
	underscore := strings.Index(got, `'_', '\_'`)
	if backslash > percent || percent > underscore {
		t.Errorf("escape order wrong: backslash at %d, %% at %d, _ at %d", backslash, percent, underscore)
	}
}

func TestEscapePattern(t *testing.T) {
	// Input carrying the escape character and both wildcards at once.
	got := EscapePattern(`50\% o_ff`)
	want := `50\\\% o\_ff`
	if got != want {
		t.Errorf("EscapePattern = %q, want %q", got, want)
	}
}

func TestPatternMatchSQL(t *testing.T) {
	d := &MSSQLDialect{}
	tests := []struct {
		lookup string
		want   string
	}{
		{"contains", `LIKE '%%' + @rhs + '%%' ESCAPE '\'`},
		{"startswith", `LIKE @rhs + '%%' ESCAPE '\'`},
		{"endswith", `LIKE '%%' + @rhs ESCAPE '\'`},
		{"icontains", `LIKE '%%' + UPPER(@rhs) + '%%' ESCAPE '\'`},
	}
	for _, tt := range tests {
		got, err := d.PatternMatchSQL(tt.lookup, "@rhs")
		if err != nil {
			t.Errorf("PatternMatchSQL(%s) error: %v", tt.lookup, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PatternMatchSQL(%s) = %q, want %q", tt.lookup, got, tt.want)
		}
		if !strings.Contains(got, `ESCAPE '\'`) {
			t.Errorf("PatternMatchSQL(%s) must declare the escape character explicitly", tt.lookup)
		}
	}

	if _, err := d.PatternMatchSQL("soundslike", "@rhs"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}
