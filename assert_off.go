//go:build !debug

package dynbuf

// assertGrow is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertGrow(string, int, int) {}

// assertRemaining is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertRemaining(string, int, int) {}
