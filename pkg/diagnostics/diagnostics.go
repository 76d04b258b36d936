// Package diagnostics carries the error taxonomy of spec §7: fatal
// errors returned from mutating calls, and soft/local findings that get
// logged rather than propagated (capacity exceeded, empty surrogate,
// filter inconsistency).
package diagnostics

import "fmt"

// Severity classifies how a finding should be handled by the caller.
type Severity string

const (
	// SeverityFatal findings abort the operation that produced them;
	// the caller's state is left unchanged.
	SeverityFatal Severity = "fatal"
	// SeverityLocal findings are handled in place (the node stops
	// subdividing, the surrogate uses fewer poles, ...); the caller
	// still succeeds.
	SeverityLocal Severity = "local"
	// SeveritySoft findings are silently absorbed (e.g. a filter
	// referencing an unknown key).
	SeveritySoft Severity = "soft"
)

// Finding is a single taxonomy entry: invalid geometry, capacity
// exceeded, a stale key, an under-sized surrogate, or a filter
// referencing unknown keys.
type Finding struct {
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
}

// GeometryError reports invalid input geometry (self-intersecting
// ring, zero-area polygon, hole outside its exterior, non-finite
// coordinate). It is fatal at load: the hazard is refused.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// StaleKeyError reports a query or mutation against a generationally
// invalid hazard key. It is fatal at the call site and never mutates
// state.
type StaleKeyError struct {
	Detail string
}

func (e *StaleKeyError) Error() string {
	if e.Detail == "" {
		return "stale hazard key"
	}
	return fmt.Sprintf("stale hazard key: %s", e.Detail)
}

// Report accumulates local/soft findings produced during an operation
// that otherwise succeeded (e.g. a preprocessing pass that pruned
// narrow concavities, or a surrogate build that fell short of its
// configured pole count).
type Report struct {
	Findings []Finding
}

// Add appends a finding to the report.
func (r *Report) Add(severity Severity, message string) {
	r.Findings = append(r.Findings, Finding{Severity: severity, Message: message})
}

// Empty reports whether the report has no findings.
func (r *Report) Empty() bool {
	return len(r.Findings) == 0
}
