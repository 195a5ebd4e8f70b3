// Package catalog registers the named demonstration problems used by the CLI.
//
// A Registry is filled once (see Default) and then only read:
//
//	reg := catalog.Default()
//	q, err := reg.ResolveScalar("quadratic")
//	f, err := q.Bind([]float64{1, 0, -4}) // x² - 4
//
// Lookups never panic through Resolve*: missing names return MissingProblemError and
// internal panics are converted to ErrRegistryPanic.
package catalog
