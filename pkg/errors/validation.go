package errors

import (
	"strings"
	"unicode"
)

// MaxSectionIDLength bounds section identifiers accepted into a catalog.
const MaxSectionIDLength = 64

// ValidateSectionID validates a section identifier before it enters a catalog.
// Identifiers appear in URLs and terminal output, so the rules are conservative:
//   - No empty identifiers
//   - No whitespace or control characters
//   - No path separators
//   - Maximum length of MaxSectionIDLength characters
func ValidateSectionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSection, "section id cannot be empty")
	}

	if len(id) > MaxSectionIDLength {
		return New(ErrCodeInvalidSection, "section id too long (max %d characters)", MaxSectionIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidSection, "section id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, `/\`) {
		return New(ErrCodeInvalidSection, "section id %q contains a path separator", id)
	}

	return nil
}

// ValidateDirection checks that a direction name is one the deck understands.
func ValidateDirection(dir string) error {
	switch dir {
	case "previous", "prev", "next":
		return nil
	case "":
		return New(ErrCodeInvalidDirection, "direction cannot be empty")
	default:
		return New(ErrCodeInvalidDirection, "unknown direction %q (want previous, prev or next)", dir)
	}
}
