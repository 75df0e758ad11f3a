package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "category update failed: entity not found",
			expected: "category update failed: entity not found",
		},
		{
			name:     "database connection string",
			input:    "dial postgres://catalog:secret@db:5432/catalog failed",
			expected: "dial [REDACTED_CREDENTIAL]db:5432/catalog failed",
		},
		{
			name:     "password parameter",
			input:    "password=hunter2 rejected",
			expected: "[REDACTED_CREDENTIAL] rejected",
		},
		{
			name:     "file path",
			input:    "open /etc/catalog/config.yaml: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "SQL statement",
			input:    "query failed: SELECT id, name FROM categories WHERE id = 7",
			expected: "query failed: [REDACTED_SQL]",
		},
		{
			name:     "stack trace",
			input:    "panic: boom\n\ngoroutine 1 [running]:\nmain.main()\n\t/app/main.go:42",
			expected: "panic: boom\n\n[STACK_TRACE_REDACTED]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("connect postgres://app:pw@localhost:5432/app")
		wrapped := fmt.Errorf("product store: %w", inner)
		assert.Equal(t, "product store: connect [REDACTED_CREDENTIAL]localhost:5432/app", redact.Error(wrapped))
	})
}
