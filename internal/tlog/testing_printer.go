package tlog

// TestingPrinter subset of *testing.T used to print errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
