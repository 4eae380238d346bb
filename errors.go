package bvh

import "fmt"

// assertf panics with a formatted message if cond is false. It guards the
// builder's internal invariants: violations here mean either a bug in this
// package or a caller-supplied volume.Volume implementation
// that breaks its contract (e.g. Merge producing a volume with smaller Area
// than either input). Both are programmer errors, not recoverable runtime
// conditions, so this package exposes no sentinel errors for them.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("bvh: invariant violated: "+format, args...))
	}
}
