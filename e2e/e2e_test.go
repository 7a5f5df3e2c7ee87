//go:build e2e

// Package e2e holds end-to-end checks against public demo sites.
// Run with: go test -tags e2e ./e2e/...
package e2e

import "os"

func baseURL(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}
