//go:build !linux

package sysmon

import (
	"fmt"
	"runtime"
)

// KernelString reports the platform when uname is unavailable.
func KernelString() string {
	return fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
}
