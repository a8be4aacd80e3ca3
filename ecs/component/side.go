package component

// Side identifies which hand slot a piece of equipment occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists every hand slot in a stable order.
var Sides = []Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
