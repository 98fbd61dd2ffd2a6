package dialect

import (
	"fmt"
	"math"
	"strings"
)

// FuncRenderer renders one SQL function call from already-compiled
// argument expressions.
type FuncRenderer func(args ...string) string

func callRenderer(name string) FuncRenderer {
	return func(args ...string) string {
		return name + "(" + strings.Join(args, ", ") + ")"
	}
}

// defaultFuncs is the baseline rendering of the numeric transform catalog.
var defaultFuncs = map[string]FuncRenderer{
	"abs":     callRenderer("ABS"),
	"acos":    callRenderer("ACOS"),
	"asin":    callRenderer("ASIN"),
	"atan":    callRenderer("ATAN"),
	"atan2":   callRenderer("ATAN2"),
	"ceil":    callRenderer("CEILING"),
	"cos":     callRenderer("COS"),
	"cot":     callRenderer("COT"),
	"degrees": callRenderer("DEGREES"),
	"exp":     callRenderer("EXP"),
	"floor":   callRenderer("FLOOR"),
	"ln":      callRenderer("LN"),
	"log":     callRenderer("LOG"),
	"mod":     callRenderer("MOD"),
	"pi":      callRenderer("PI"),
	"power":   callRenderer("POWER"),
	"radians": callRenderer("RADIANS"),
	"random":  callRenderer("RANDOM"),
	"round":   callRenderer("ROUND"),
	"sign":    callRenderer("SIGN"),
	"sin":     callRenderer("SIN"),
	"sqrt":    callRenderer("SQRT"),
	"tan":     callRenderer("TAN"),
}

// vendorFuncs holds per-vendor overrides keyed by driver identifier.
// Dispatch falls back to defaultFuncs when a vendor has no override,
// avoiding inheritance-style specialization.
var vendorFuncs = map[string]map[string]FuncRenderer{
	"sqlserver": {
		"atan2": callRenderer("ATN2"),
		"ln":    callRenderer("LOG"),
		// No MOD function; the % operator stands in. Doubled for the
		// adapter's rewrite pass.
		"mod": func(args ...string) string {
			return fmt.Sprintf("%s %%%% %s", args[0], args[1])
		},
		"random": func(...string) string { return "RAND()" },
		// ROUND requires an explicit length argument.
		"round": func(args ...string) string {
			if len(args) == 1 {
				return fmt.Sprintf("ROUND(%s, 0)", args[0])
			}
			return fmt.Sprintf("ROUND(%s)", strings.Join(args, ", "))
		},
	},
	"oracle": {
		"ceil": callRenderer("CEIL"),
		"cot": func(args ...string) string {
			return fmt.Sprintf("(1 / TAN(%s))", args[0])
		},
		"degrees": func(args ...string) string {
			return fmt.Sprintf("((%s) * 180 / %v)", args[0], math.Pi)
		},
		"pi": func(...string) string { return fmt.Sprintf("%v", math.Pi) },
		"radians": func(args ...string) string {
			return fmt.Sprintf("((%s) * %v / 180)", args[0], math.Pi)
		},
		"random": func(...string) string { return "DBMS_RANDOM.VALUE()" },
	},
	"mysql": {
		"random": func(...string) string { return "RAND()" },
	},
}

// RenderFunc renders a numeric transform for a vendor, preferring the
// vendor's override and falling back to the default renderer.
func RenderFunc(vendor, name string, args ...string) (string, error) {
	if overrides, ok := vendorFuncs[vendor]; ok {
		if r, ok := overrides[name]; ok {
			return r(args...), nil
		}
	}
	r, ok := defaultFuncs[name]
	if !ok {
		return "", fmt.Errorf("function %q: %w", name, ErrNotSupported)
	}
	return r(args...), nil
}
