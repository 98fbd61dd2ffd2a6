package adapter

import (
	"fmt"
	"strings"

	"db-shift/internal/dialect"
)

// formatSQL rewrites a caller-side template into driver SQL.
//
// With bound parameters, every %s marker becomes the dialect's native
// positional marker, %% unescapes to %, and any other percent sequence is
// a template error; the marker count must equal the parameter count.
//
// With no parameters, only %% is unescaped and the statement runs
// verbatim: a lone % (a modulo operator in hand-written SQL, say) must not
// be misread as a placeholder when no binding was requested.
func formatSQL(query string, argc int, d dialect.Dialect) (string, error) {
	if argc == 0 {
		return strings.ReplaceAll(query, "%%", "%"), nil
	}

	var b strings.Builder
	b.Grow(len(query))
	markers := 0
	for i := 0; i < len(query); i++ {
		ch := query[i]
		if ch != '%' {
			b.WriteByte(ch)
			continue
		}
		if i+1 >= len(query) {
			return "", fmt.Errorf("%w: trailing %% in %q", ErrBadTemplate, query)
		}
		switch query[i+1] {
		case '%':
			b.WriteByte('%')
		case 's':
			b.WriteString(d.Placeholder(markers))
			markers++
		default:
			return "", fmt.Errorf("%w: unsupported format character %q in %q",
				ErrBadTemplate, string(query[i+1]), query)
		}
		i++
	}
	if markers != argc {
		return "", fmt.Errorf("%w: %d markers for %d parameters", ErrBadTemplate, markers, argc)
	}
	return b.String(), nil
}
