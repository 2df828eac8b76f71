// internal/signal/action_test.go
package signal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	var m Mask
	assert.True(t, m.IsEmpty())

	m.Add(1)
	m.Add(15)
	m.Add(64)
	m.Add(0)
	m.Add(65)

	assert.False(t, m.IsEmpty())
	assert.True(t, m.Has(15))
	assert.False(t, m.Has(14))
	assert.False(t, m.Has(65))
	assert.Equal(t, []int{1, 15, 64}, m.Signals())
}

func TestHandlerString(t *testing.T) {
	assert.Equal(t, "default", HandlerDefault.String())
	assert.Equal(t, "ignore", HandlerIgnore.String())
	assert.Equal(t, "0x4000", Handler(0x4000).String())

	h := FuncHandler(func(os.Signal) {})
	assert.True(t, h.IsFunc())
	assert.Contains(t, h.String(), "func#")
	assert.False(t, Handler(0x4000).IsFunc())
}

func TestFlagsHas(t *testing.T) {
	f := testRestartFlag | testSigInfoFlag
	assert.True(t, f.Has(testRestartFlag))
	assert.False(t, f.Has(0), "a zero flag is never set")
	assert.False(t, Flags(0).Has(testSigInfoFlag))
	assert.Equal(t, "none", Flags(0).String())
}

func TestCapabilitiesSummary(t *testing.T) {
	caps := Capabilities{Structured: true, HaveRestart: true}
	assert.Equal(t, []string{"structured", "restart"}, caps.Available())
	assert.Equal(t, []string{"siginfo", "legacy_context"}, caps.Unavailable())

	prim := Capabilities{Structured: true, HaveSigInfo: true, LegacyContext: true, SigInfoFlag: 4}.Primitive()
	assert.Equal(t, Capabilities{LegacyContext: true}, prim)
}
