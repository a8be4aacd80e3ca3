package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// PoolTag marks the pooled holding transform equipped items are parented
// into while carried.
type PoolTag struct{}

var PoolTagComponent = NewComponent[PoolTag]()

// DropPointTag marks the spawn point dropped items are released at.
type DropPointTag struct{}

var DropPointTagComponent = NewComponent[DropPointTag]()
