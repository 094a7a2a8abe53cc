package dispatch

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// named holds the built-in formatters selectable by name from a descriptor.
var named = map[string]Formatter{
	"percent":  Percent,
	"currency": Currency,
	"compact":  Compact,
	"identity": IdentityFormat,
}

// Named returns the built-in formatter called name.
func Named(name string) (Formatter, bool) {
	f, ok := named[name]
	return f, ok
}

// FormatterNames lists the built-in formatter names, sorted.
func FormatterNames() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IdentityFormat renders v as plain text.
func IdentityFormat(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Percent renders a ratio as a percentage: 0.125 is "12.5%".
func Percent(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return IdentityFormat(v)
	}
	return trimZeros(strconv.FormatFloat(f*100, 'f', 2, 64)) + "%"
}

// Currency renders a dollar amount with grouping: 1234.5 is "$1,234.50".
func Currency(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return IdentityFormat(v)
	}
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// Compact renders large numbers with a magnitude suffix: 1234 is "1.2K".
func Compact(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return IdentityFormat(v)
	}
	abs := math.Abs(f)
	for _, unit := range []struct {
		size   float64
		suffix string
	}{{1e12, "T"}, {1e9, "B"}, {1e6, "M"}, {1e3, "K"}} {
		if abs >= unit.size {
			return trimZeros(strconv.FormatFloat(f/unit.size, 'f', 1, 64)) + unit.suffix
		}
	}
	return trimZeros(strconv.FormatFloat(f, 'f', 1, 64))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
