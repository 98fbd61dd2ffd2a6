package dialect

import (
	"fmt"
	"strings"
)

// patternOps wrap an operand expression into a LIKE match. The escape
// character is declared explicitly in every clause; the dialect default is
// not relied upon because defaults vary between products. Percent literals
// are doubled for the adapter's rewrite pass.
var patternOps = map[string]string{
	"contains":    `LIKE '%%' + %s + '%%' ESCAPE '\'`,
	"icontains":   `LIKE '%%' + UPPER(%s) + '%%' ESCAPE '\'`,
	"startswith":  `LIKE %s + '%%' ESCAPE '\'`,
	"istartswith": `LIKE UPPER(%s) + '%%' ESCAPE '\'`,
	"endswith":    `LIKE '%%' + %s ESCAPE '\'`,
	"iendswith":   `LIKE '%%' + UPPER(%s) ESCAPE '\'`,
}

// PatternEscapeSQL wraps an operand expression so that every escape
// character and literal wildcard in its value is escaped at query time.
// The escape character is replaced first; doing it in any other order
// would re-escape the backslashes introduced for the wildcards.
func (d *MSSQLDialect) PatternEscapeSQL(operandExpr string) string {
	return fmt.Sprintf(`REPLACE(REPLACE(REPLACE(%s, '\', '\\'), '%%%%', '\%%%%'), '_', '\_')`, operandExpr)
}

// PatternMatchSQL renders a LIKE-based match for the given lookup kind.
// The operand is spliced in verbatim: the fragment stays in template space,
// with its percent literals still doubled for the rewrite pass.
func (d *MSSQLDialect) PatternMatchSQL(lookup, operandExpr string) (string, error) {
	op, ok := patternOps[lookup]
	if !ok {
		return "", fmt.Errorf("pattern lookup %q: %w", lookup, ErrNotSupported)
	}
	return strings.Replace(op, TemplateMarker, operandExpr, 1), nil
}

// EscapePattern escapes a literal search term for use as a LIKE parameter.
// Escape character first, then the wildcards, same ordering constraint as
// PatternEscapeSQL.
func EscapePattern(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}
