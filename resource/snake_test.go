package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected string
	}{
		{"Zero-Value", "", ""},
		{"Simple", "Widget", "widget"},
		{"Compound", "BlogPost", "blog_post"},
		{"Uppercase-Run", "HTTPRoute", "http_route"},
		{"Idempotent", "blog_post", "blog_post"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, snakeCase(tc.input))
		})
	}
}
