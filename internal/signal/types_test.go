//go:build !windows

// internal/signal/types_test.go
package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSignalFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"SIGKILL", 9, false},
		{"SIGTERM", 15, false},
		{"term", 15, false},
		{" sighup ", 1, false},
		{"9", 9, false},
		{"64", 64, false},
		{"65", 0, true},
		{"0", 0, true},
		{"INVALID", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sig, err := SignalFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, sig)
			}
		})
	}
}

func TestSignalName(t *testing.T) {
	assert.Equal(t, "SIGTERM", SignalName(int(unix.SIGTERM)))
	assert.Equal(t, "SIGSEGV", SignalName(int(unix.SIGSEGV)))
	assert.Equal(t, "SIG40", SignalName(40))
}

func TestExpandSignalGroup(t *testing.T) {
	tests := []struct {
		group    string
		expected []int
		wantErr  bool
	}{
		{"@fault", []int{int(unix.SIGSEGV), int(unix.SIGBUS), int(unix.SIGFPE), int(unix.SIGILL)}, false},
		{"@timer", []int{int(unix.SIGALRM), int(unix.SIGVTALRM), int(unix.SIGPROF)}, false},
		{"@TERMINAL", []int{1, 2, 3, 15}, false},
		{"@invalid", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			signals, err := ExpandSignalGroup(tt.group)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.ElementsMatch(t, tt.expected, signals)
			}
		})
	}
}

func TestExpandAllIsCopy(t *testing.T) {
	all, err := ExpandSignalGroup("@all")
	require.NoError(t, err)
	require.Len(t, all, 31)
	all[0] = 99

	again, err := ExpandSignalGroup("@all")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0])
}

func TestParseSignals(t *testing.T) {
	sigs, err := ParseSignals([]string{"SIGTERM", "@terminal", "int", "10"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 10, 15}, sigs)

	_, err = ParseSignals([]string{"SIGTERM", "@nope"})
	assert.Error(t, err)
	_, err = ParseSignals([]string{"bogus"})
	assert.Error(t, err)
}
