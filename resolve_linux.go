//go:build linux
// +build linux

package suppress

import "golang.org/x/sys/unix"

// MaxPathLen is the kernel's PATH_MAX, including the terminating NUL.
const MaxPathLen = unix.PathMax

func access(path string) error {
	return unix.Access(path, unix.X_OK)
}
