//go:build debug

package dynbuf

import "fmt"

// assertGrow panics if capacity would shrink below the fill.
// Only enabled with -tags debug.
func assertGrow(method string, capacity, fill int) {
	if capacity < fill {
		panic(fmt.Sprintf("%s: capacity %d < fill %d", method, capacity, fill))
	}
}

// assertRemaining panics if an unchecked append exceeds the remaining capacity.
// Only enabled with -tags debug.
func assertRemaining(method string, n, remaining int) {
	if n > remaining {
		panic(fmt.Sprintf("%s: %d bytes > %d remaining", method, n, remaining))
	}
}
