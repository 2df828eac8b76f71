// internal/signal/primitive.go
package signal

// SignalTable is a single-argument signal call: it installs a bare handler
// and hands back the previous one. A non-nil error takes the place of the
// SIG_ERR return.
type SignalTable interface {
	Swap(sig int, h Handler) (Handler, error)
	Load(sig int) (Handler, error)
}

// PrimitiveFacility adapts a SignalTable to Facility. Actions degenerate
// to their handler; flags, mask and restorer are dropped on set and zero
// on get.
type PrimitiveFacility struct {
	table SignalTable
}

// NewPrimitive returns a primitive facility over t.
func NewPrimitive(t SignalTable) *PrimitiveFacility {
	return &PrimitiveFacility{table: t}
}

func (p *PrimitiveFacility) Capabilities() Capabilities {
	return Detected().Primitive()
}

func (p *PrimitiveFacility) EmptyMask(m *Mask) error {
	*m = 0
	return nil
}

func (p *PrimitiveFacility) Action(sig int) (Action, error) {
	h, err := p.table.Load(sig)
	if err != nil {
		return Action{}, err
	}
	return Action{Handler: h}, nil
}

func (p *PrimitiveFacility) SetAction(sig int, act Action) error {
	_, err := p.table.Swap(sig, act.Handler)
	return err
}
