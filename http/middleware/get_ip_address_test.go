package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchyard-web/switchyard/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   http.Header
		expected string
	}{
		{"None", http.Header{}, "0.0.0.0"},
		{"Forwarded-For", http.Header{"X-Forwarded-For": []string{"203.0.113.7"}}, "203.0.113.7"},
		{"Skips-Private", http.Header{"X-Forwarded-For": []string{"203.0.113.7, 10.0.0.1"}}, "203.0.113.7"},
		{"Real-Ip", http.Header{"X-Real-Ip": []string{"198.51.100.9"}}, "198.51.100.9"},
		{"All-Private", http.Header{"X-Forwarded-For": []string{"192.168.0.10"}}, "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.header))
		})
	}
}
