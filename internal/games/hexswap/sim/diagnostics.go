package sim

// Diagnostics receives log lines and invariant violations from the
// controller. Production builds pass NopDiagnostics; diagnostic builds pass
// an implementation that logs and aborts on violations.
type Diagnostics interface {
	Log(msg string)
	InvariantViolation(msg string)
}

// NopDiagnostics discards everything.
type NopDiagnostics struct{}

// Log does nothing.
func (NopDiagnostics) Log(string) {}

// InvariantViolation does nothing.
func (NopDiagnostics) InvariantViolation(string) {}
