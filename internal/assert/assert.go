//go:build !bootgraphdebug

package assert

// That is a no-op in non-debug builds; see assert_debug.go.
func That(cond bool, format string, args ...any) {}
