//go:build windows

package secmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Lock pins the pages backing b in RAM.
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

// Unlock releases a Lock on b.
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
