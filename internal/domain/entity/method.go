package entity

// Method is a ranked logging method. Its value is the severity rank:
// lower ranks are more severe and pass the level gate at lower thresholds.
type Method int

const (
	// MethodError is the most severe ranked method
	MethodError Method = iota
	// MethodWarn for warnings
	MethodWarn
	// MethodInfo for informational output
	MethodInfo
	// MethodDebug for debug output
	MethodDebug
	// MethodLog is the least severe ranked method
	MethodLog
)

// MethodCount is the number of ranked methods
const MethodCount = 5

// methodNames is ordered by rank
var methodNames = [MethodCount]string{"error", "warn", "info", "debug", "log"}

// Methods returns every ranked method ordered by rank
func Methods() []Method {
	return []Method{MethodError, MethodWarn, MethodInfo, MethodDebug, MethodLog}
}

// Rank returns the severity ordinal of the method
func (m Method) Rank() int {
	return int(m)
}

// Valid reports whether m is one of the ranked methods
func (m Method) Valid() bool {
	return m >= MethodError && m <= MethodLog
}

// String returns the method name, e.g. "info"
func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return methodNames[m]
}

// ParseMethod resolves a method name to its ranked method
func ParseMethod(name string) (Method, bool) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), true
		}
	}
	return 0, false
}
