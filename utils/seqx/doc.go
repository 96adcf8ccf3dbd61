// Package seqx provides the lazy side of the sequence utilities: an integer
// Range modelled on the familiar range(start, stop, step) and a set of
// adapters over iter.Seq.
//
// A Range is an immutable value. Every call to All or Backward starts a new
// traversal, so the same Range can be iterated any number of times:
//
//	r := seqx.NewRangeStep(10, 0, -3)
//	for v := range r.All() {
//		fmt.Println(v) // 10 7 4 1
//	}
//
// The adapters (Map, Filter, Zip, Enumerate, Chain, Take, Drop) never
// buffer their input. They are restartable whenever their source is.
package seqx
