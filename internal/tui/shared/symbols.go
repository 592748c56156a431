package shared

import (
	"os"
	"strings"
)

// unicodeDisabled is set when the terminal cannot be trusted with symbols.
//
//nolint:gochecknoglobals // read once from the environment
var unicodeDisabled = asciiOnly(os.Getenv("TERM"), os.Getenv("DOCKET_ASCII"))

// ErrorSymbol returns a cross symbol with ASCII fallback
func ErrorSymbol() string {
	if unicodeDisabled {
		return "[x]"
	}

	return "✗"
}

// SuccessSymbol returns a check mark with ASCII fallback
func SuccessSymbol() string {
	if unicodeDisabled {
		return "[v]"
	}

	return "✓"
}

// WarningSymbol returns a warning sign with ASCII fallback
func WarningSymbol() string {
	if unicodeDisabled {
		return "[!]"
	}

	return "⚠"
}

func asciiOnly(term, override string) bool {
	if override != "" {
		return override != "0"
	}

	return term == "dumb" || strings.HasPrefix(term, "vt")
}
