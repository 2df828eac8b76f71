//go:build !windows

// internal/signal/notify_test.go
package signal

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// notifyTestSignal is distinct from kernelTestSignal so the two tables never
// share a disposition.
const notifyTestSignal = int(unix.SIGUSR1)

func newNotifyInstaller(t *testing.T) (*Installer, *NotifyTable) {
	t.Helper()
	table := NewNotifyTable()
	t.Cleanup(func() {
		_, _ = table.Swap(notifyTestSignal, HandlerDefault)
	})
	i, _ := newTestInstaller(NewPrimitive(table))
	return i, table
}

func TestNotifyTableIgnoreAndDefault(t *testing.T) {
	i, table := newNotifyInstaller(t)

	i.Install(notifyTestSignal, HandlerIgnore, true, true, "usr1 ignore")
	assert.Equal(t, Action{Handler: HandlerIgnore}, i.Action(notifyTestSignal, "query usr1"))

	prev, err := table.Swap(notifyTestSignal, HandlerDefault)
	require.NoError(t, err)
	assert.Equal(t, HandlerIgnore, prev)
	assert.Equal(t, HandlerDefault, i.Action(notifyTestSignal, "query usr1").Handler)
}

func TestNotifyTableRunsFuncHandler(t *testing.T) {
	i, _ := newNotifyInstaller(t)

	got := make(chan os.Signal, 1)
	h := FuncHandler(func(s os.Signal) {
		select {
		case got <- s:
		default:
		}
	})
	i.InstallNoRestart(notifyTestSignal, h, false, "usr1 func")
	assert.Equal(t, h, i.Action(notifyTestSignal, "query usr1").Handler)

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGUSR1))
	select {
	case s := <-got:
		assert.Equal(t, syscall.SIGUSR1, s)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestNotifyTableRejects(t *testing.T) {
	table := NewNotifyTable()

	_, err := table.Swap(0, HandlerIgnore)
	assert.ErrorIs(t, err, syscall.EINVAL)
	_, err = table.Swap(maxSignal+1, HandlerIgnore)
	assert.ErrorIs(t, err, syscall.EINVAL)
	_, err = table.Swap(int(unix.SIGKILL), HandlerIgnore)
	assert.ErrorIs(t, err, syscall.EINVAL)
	_, err = table.Swap(notifyTestSignal, 0x1234)
	assert.ErrorIs(t, err, syscall.EINVAL, "raw addresses cannot run under os/signal")
	_, err = table.Load(-3)
	assert.ErrorIs(t, err, syscall.EINVAL)

	h, err := table.Load(int(unix.SIGKILL))
	require.NoError(t, err)
	assert.Equal(t, HandlerDefault, h)
}

func TestNotifyTableBadSignalIsFatal(t *testing.T) {
	i, rec := newTestInstaller(NewPrimitive(NewNotifyTable()))

	err := expectFatal(t, func() {
		i.Install(500, HandlerIgnore, true, true, "bad signal")
	})
	assert.ErrorIs(t, err, syscall.EINVAL)
	assert.Contains(t, rec.diag.String(), "bad signal")
}

func TestNotifyTableDefaultAfterIgnoreIsVisible(t *testing.T) {
	i, table := newNotifyInstaller(t)

	for n := 0; n < 3; n++ {
		i.InstallNoRestart(notifyTestSignal, HandlerIgnore, false, "usr1 ignore")
		assert.Equal(t, HandlerIgnore, i.Action(notifyTestSignal, "query usr1").Handler)

		i.InstallNoRestart(notifyTestSignal, HandlerDefault, false, "usr1 default")
		assert.Equal(t, HandlerDefault, i.Action(notifyTestSignal, "query usr1").Handler,
			"default must be visible on round %d", n)
	}

	h, err := table.Load(notifyTestSignal)
	require.NoError(t, err)
	assert.Equal(t, HandlerDefault, h)
}
