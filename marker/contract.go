package marker

import "fmt"

// assertf panics when the condition does not hold. Used for the contract
// violations the package documents as programmer errors.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("marker: " + fmt.Sprintf(format, args...))
	}
}
