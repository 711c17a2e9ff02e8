package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Student identifier pattern - letters, digits and slashes, as printed on club cards
	StudentIDPattern = `^[A-Za-z0-9/\-]{4,20}$`

	// Event date and time formats
	EventDateLayout = "2006-01-02"
	EventTimeLayout = "15:04"

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}
