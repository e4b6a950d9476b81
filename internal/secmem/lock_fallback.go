//go:build !unix && !windows

package secmem

import "errors"

// Lock is unsupported without mlock or VirtualLock.
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return errors.ErrUnsupported
}

// Unlock is a no-op when Lock is unsupported.
func Unlock([]byte) error { return nil }
