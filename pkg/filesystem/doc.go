// Package filesystem provides filesystem implementations for dotsync.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed one used
// in tests.
package filesystem
