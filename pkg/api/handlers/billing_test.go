package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReturnURL(t *testing.T) {
	const defaultURL = "https://app.nexa.ai/billing"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty URL returns default",
			input:    "",
			expected: defaultURL,
		},
		{
			name:     "Production host allowed",
			input:    "https://app.nexa.ai/billing/success",
			expected: "https://app.nexa.ai/billing/success",
		},
		{
			name:     "Marketing host allowed",
			input:    "https://nexa.ai/pricing",
			expected: "https://nexa.ai/pricing",
		},
		{
			name:     "Localhost allowed for development",
			input:    "http://localhost:3000/billing",
			expected: "http://localhost:3000/billing",
		},
		{
			name:     "External host rejected",
			input:    "https://evil.com/phish",
			expected: defaultURL,
		},
		{
			name:     "Subdomain spoof rejected",
			input:    "https://app.nexa.ai.evil.com/",
			expected: defaultURL,
		},
		{
			name:     "Javascript scheme rejected",
			input:    "javascript:alert(1)",
			expected: defaultURL,
		},
		{
			name:     "Data scheme rejected",
			input:    "data:text/html,<script>alert(1)</script>",
			expected: defaultURL,
		},
		{
			name:     "Userinfo phishing rejected",
			input:    "https://attacker@app.nexa.ai/billing",
			expected: defaultURL,
		},
		{
			name:     "Wrong port rejected",
			input:    "http://localhost:9999/billing",
			expected: defaultURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validateReturnURL(tt.input))
		})
	}
}
