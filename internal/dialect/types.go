package dialect

import "fmt"

// dataTypes maps logical field kinds to their declared SQL type. The
// %(...)s slots are filled by the schema tooling that owns DDL generation.
var dataTypes = map[string]string{
	"AutoField":                "int identity(1,1)",
	"BigAutoField":             "bigint identity(1,1)",
	"BinaryField":              "varbinary(MAX)",
	"BooleanField":             "bit",
	"CharField":                "nvarchar(%(max_length)s)",
	"DateField":                "date",
	"DateTimeField":            "datetime2",
	"DecimalField":             "decimal(%(max_digits)s, %(decimal_places)s)",
	"DurationField":            "bigint",
	"FileField":                "nvarchar(%(max_length)s)",
	"FilePathField":            "nvarchar(%(max_length)s)",
	"FloatField":               "real",
	"IntegerField":             "int",
	"BigIntegerField":          "bigint",
	"GenericIPAddressField":    "varchar(39)",
	"NullBooleanField":         "bit",
	"OneToOneField":            "int",
	"PositiveBigIntegerField":  "bigint",
	"PositiveIntegerField":     "int",
	"PositiveSmallIntegerField": "smallint",
	"SlugField":                "nvarchar(%(max_length)s)",
	"SmallAutoField":           "smallint identity(1,1)",
	"SmallIntegerField":        "smallint",
	"TextField":                "nvarchar(max)",
	"TimeField":                "time",
	"UUIDField":                "char(32)",
}

// operators maps lookup kinds to comparison fragments taking one bound
// parameter. The dialect has no regex matching; regex lookups degrade to
// LIKE, which is the documented behavior.
var operators = map[string]string{
	"exact":       "= %s",
	"iexact":      "= UPPER(%s)",
	"contains":    "LIKE %s",
	"icontains":   "LIKE UPPER(%s)",
	"regex":       "LIKE %s",
	"iregex":      "LIKE UPPER(%s)",
	"gt":          "> %s",
	"gte":         ">= %s",
	"lt":          "< %s",
	"lte":         "<= %s",
	"startswith":  "LIKE %s",
	"endswith":    "LIKE %s",
	"istartswith": "LIKE UPPER(%s)",
	"iendswith":   "LIKE UPPER(%s)",
}

// DataType returns the declared SQL type template for a logical field kind.
func (d *MSSQLDialect) DataType(kind string) (string, error) {
	t, ok := dataTypes[kind]
	if !ok {
		return "", fmt.Errorf("field kind %q: %w", kind, ErrNotSupported)
	}
	return t, nil
}

// OperatorSQL returns the comparison fragment for a lookup kind.
func (d *MSSQLDialect) OperatorSQL(lookup string) (string, error) {
	op, ok := operators[lookup]
	if !ok {
		return "", fmt.Errorf("lookup %q: %w", lookup, ErrNotSupported)
	}
	return op, nil
}
