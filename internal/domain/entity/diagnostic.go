package entity

// Diagnostic identifies a pass-through diagnostic method. Diagnostics are
// forwarded to the sink as-is: they are never ranked, filtered or recorded.
type Diagnostic int

const (
	DiagnosticAssert Diagnostic = iota
	DiagnosticClear
	DiagnosticCount
	DiagnosticDir
	DiagnosticDirXML
	DiagnosticException
	DiagnosticGroup
	DiagnosticGroupCollapsed
	DiagnosticGroupEnd
	DiagnosticProfile
	DiagnosticProfileEnd
	DiagnosticTable
	DiagnosticTime
	DiagnosticTimeEnd
	DiagnosticTrace
)

const numDiagnostics = int(DiagnosticTrace) + 1

var diagnosticNames = [numDiagnostics]string{
	"assert", "clear", "count", "dir", "dirxml", "exception", "group",
	"groupCollapsed", "groupEnd", "profile", "profileEnd", "table", "time",
	"timeEnd", "trace",
}

// Diagnostics returns every pass-through diagnostic in declaration order
func Diagnostics() []Diagnostic {
	all := make([]Diagnostic, numDiagnostics)
	for i := range all {
		all[i] = Diagnostic(i)
	}
	return all
}

// Valid reports whether d is a known diagnostic
func (d Diagnostic) Valid() bool {
	return d >= DiagnosticAssert && d <= DiagnosticTrace
}

// String returns the diagnostic name, e.g. "groupCollapsed"
func (d Diagnostic) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return diagnosticNames[d]
}
