//go:build !windows

package collector

// OpenInstrumentation always fails on non-Windows platforms; the collector
// never calls it there.
func OpenInstrumentation() (Instrumentation, error) {
	return nil, ErrNotApplicable
}
