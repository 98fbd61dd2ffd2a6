package dialect

import "strings"

// GeneratePlaceholders creates a comma-separated list of placeholder
// strings using the supplied per-index placeholder function.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// TemplateMarker is the caller-side positional marker. Every SQL fragment
// emitted by the translators uses it; the adapter rewrites it into the
// driver's native marker at execution time. Literal percent characters in
// fragments are doubled so the rewrite pass cannot misread them.
const TemplateMarker = "%s"

// DefaultGetSchemaName is the identity schema resolution.
func DefaultGetSchemaName(input string) string {
	return input
}
