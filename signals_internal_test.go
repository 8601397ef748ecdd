package suppress

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRelayed(t *testing.T) {
	t.Parallel()

	require.True(t, isRelayed(syscall.SIGTERM))
	require.True(t, isRelayed(syscall.SIGHUP))
	require.False(t, isRelayed(os.Interrupt))
	require.False(t, isRelayed(syscall.SIGQUIT))
	require.False(t, isRelayed(syscall.SIGKILL))
}
