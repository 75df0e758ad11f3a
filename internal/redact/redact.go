// Package redact scrubs credentials, SQL text, file paths and stack traces
// from strings before they are written to logs.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	StackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; stack traces go first so their file paths are not
// redacted piecemeal.
var rules = []rule{
	{regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`), StackTracePlaceholder},
	{regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`), CredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*\S+`), CredentialPlaceholder},
	// Statement keywords are matched case-sensitively so prose such as
	// "category update failed" is left alone.
	{regexp.MustCompile(`\b(?:SELECT|INSERT INTO|UPDATE|DELETE FROM|WITH)\s[^;]*`), SQLPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), PathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
