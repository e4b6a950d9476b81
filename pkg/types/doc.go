// Package types defines the error taxonomy shared by the bytekit containers.
//
// Every fallible operation in arraylist, bytebuf, and alloc reports one of
// the kinds below through an explicit error return. There is no process-wide
// "last error"; callers branch on errors.Is against the sentinels or on
// KindOf.
//
// This package has no dependencies beyond the standard library.
package types
