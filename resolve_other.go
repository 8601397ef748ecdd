//go:build !linux
// +build !linux

package suppress

// MaxPathLen mirrors the Linux PATH_MAX.
const MaxPathLen = 4096

func access(_ string) error {
	return errUnsupportedOS
}
