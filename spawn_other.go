//go:build !linux
// +build !linux

package suppress

type unsupportedSpawner struct{}

// NewSpawner returns a Spawner that always fails on operating systems other
// than Linux.
func NewSpawner() Spawner {
	return unsupportedSpawner{}
}

func (unsupportedSpawner) Spawn(_ string, _ []string) (Child, error) {
	return nil, errUnsupportedOS
}

// SignalName always returns an empty string on operating systems other than
// Linux.
func SignalName(_ int) string {
	return ""
}
