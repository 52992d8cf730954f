//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package random

// residentMemorySize returns zero on platforms that do not provide a
// cheap equivalent of getrusage(2), causing this word of entropy to be
// skipped during seed derivation.
func residentMemorySize() uint64 {
	return 0
}
