//go:build linux

package sysmon

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// KernelString returns the running kernel identity as "sysname release
// machine", for example "Linux 6.8.0-45-generic x86_64".
func KernelString() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%s %s %s",
		utsField(uts.Sysname[:]),
		utsField(uts.Release[:]),
		utsField(uts.Machine[:]))
}

// utsField converts a NUL-terminated utsname field to a string.
func utsField(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
