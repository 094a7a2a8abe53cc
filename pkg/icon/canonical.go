package icon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPrefix is the reserved prefix of canonical icon names.
const DefaultPrefix = "Icon"

// Canonical normalizes name: names already starting with prefix are kept,
// others get the prefix and an upper-cased first rune.
// Canonical(Canonical(n)) == Canonical(n) for every n.
func Canonical(name, prefix string) string {
	if name == "" {
		return ""
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if strings.HasPrefix(name, prefix) {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return prefix + string(unicode.ToUpper(r)) + name[size:]
}
