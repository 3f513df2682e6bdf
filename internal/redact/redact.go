// Package redact removes sensitive information from strings before they are
// logged. Error text originating in the database driver can carry connection
// strings, credentials and raw SQL; everything funneled through the logging
// helpers passes through here first.
package redact

import "regexp"

// RedactionPlaceholder replaces any matched sensitive fragment.
const RedactionPlaceholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with embedded credentials.
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`),

	// password=... / password: ... style key-value credentials.
	regexp.MustCompile(`(?i)(password|passwd|pwd|secret|token)([=:\s]['"]?)[^'"&\s]{3,}`),

	// JWT tokens (three base64url segments).
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),

	// SQL statement fragments leaked from the driver.
	regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)[\s\w,*()='"$]*`),

	// host:port pairs.
	regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`),
}

// String returns s with all sensitive fragments replaced.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
