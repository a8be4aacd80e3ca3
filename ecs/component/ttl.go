package component

// TTL destroys an entity after Frames update ticks.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
