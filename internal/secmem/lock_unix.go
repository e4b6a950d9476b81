//go:build unix

package secmem

import "golang.org/x/sys/unix"

// Lock pins the pages backing b in RAM.
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

// Unlock releases a Lock on b.
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
