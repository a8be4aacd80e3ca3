package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// QueuePlay flags the named clip for playback on the next audio tick.
// Returns false if the clip is not present.
func (a *Audio) QueuePlay(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}
