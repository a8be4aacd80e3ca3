package component

// Input stores per-tick input state for an entity. The input system
// samples the hardware once per tick; everything downstream reads this.
type Input struct {
	AimX float64
	AimY float64

	FireLeftHeld  bool
	FireRightHeld bool

	SwapModifierHeld bool
	SwapLeftPressed  bool
	SwapRightPressed bool

	DropLeftPressed  bool
	DropRightPressed bool

	PausePressed bool
}

var InputComponent = NewComponent[Input]()

// FireHeld returns the trigger state for a side.
func (in *Input) FireHeld(side Side) bool {
	if in == nil {
		return false
	}
	if side == SideLeft {
		return in.FireLeftHeld
	}
	return in.FireRightHeld
}

// SwapPressed returns the edge-triggered swap input for a side.
func (in *Input) SwapPressed(side Side) bool {
	if in == nil {
		return false
	}
	if side == SideLeft {
		return in.SwapLeftPressed
	}
	return in.SwapRightPressed
}

// DropPressed returns the edge-triggered drop input for a side.
func (in *Input) DropPressed(side Side) bool {
	if in == nil {
		return false
	}
	if side == SideLeft {
		return in.DropLeftPressed
	}
	return in.DropRightPressed
}
