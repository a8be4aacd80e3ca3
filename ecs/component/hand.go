package component

// Animator state names for the hand rigs.
const (
	HandStateIdle  = "idle"
	HandStateReady = "ready"
)

// Hand marks an equippable item entity. Kind is the item type; at most
// one item of a kind may be equipped per side.
type Hand struct {
	Side Side
	Kind string
}

var HandComponent = NewComponent[Hand]()

// HandRig marks a side's arm animator entity. The fire-readiness gate
// and the forced-idle trigger address animators through this tag.
type HandRig struct {
	Side Side
}

var HandRigComponent = NewComponent[HandRig]()
