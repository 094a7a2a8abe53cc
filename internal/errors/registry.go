package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"E201": {
		Category:   CategoryRender,
		Message:    "Unknown widget tag",
		Suggestion: "Register the tag at bootstrap or check its spelling; tags are case-sensitive.",
	},
	"E202": {
		Category: CategoryIcon,
		Message:  "Icon not found",
	},
	"E203": {
		Category: CategoryIcon,
		Message:  "Icon load failed",
	},
	"E204": {
		Category:   CategoryData,
		Message:    "Malformed widget descriptor",
		Suggestion: `A descriptor is an object with "tag", optional "props" and optional "children".`,
	},
	"E205": {
		Category:   CategoryData,
		Message:    "Malformed option",
		Suggestion: `Every option needs a "value"; "label" defaults to the value.`,
	},
	"E206": {
		Category: CategoryData,
		Message:  "Duplicate option value",
	},
	"E207": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	"E208": {
		Category: CategoryRegistry,
		Message:  "Cannot register an empty tag",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
