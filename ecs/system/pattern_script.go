package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gunhands/prefabs"
)

// PatternRuntime resolves scripted pellet patterns. Each pattern is a
// tengo script (prefabs/scripts/<name>.tengo) that receives `pellets`
// and `spread` and leaves an `offsets` array of angle offsets in
// radians. Script errors are logged once and the pattern falls back to
// random spread.
type PatternRuntime struct {
	mu       sync.Mutex
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewPatternRuntime() *PatternRuntime {
	return &PatternRuntime{
		compiled: make(map[string]*tengo.Compiled),
		failed:   make(map[string]bool),
	}
}

func (r *PatternRuntime) Offsets(name string, pellets int, spread float64) ([]float64, bool) {
	if r == nil || name == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failed[name] {
		return nil, false
	}

	compiled, ok := r.compiled[name]
	if !ok {
		var err error
		compiled, err = r.compile(name)
		if err != nil {
			log.Printf("pattern %q: %v", name, err)
			r.failed[name] = true
			return nil, false
		}
		r.compiled[name] = compiled
	}

	run := compiled.Clone()
	if err := run.Set("pellets", pellets); err != nil {
		return nil, false
	}
	if err := run.Set("spread", spread); err != nil {
		return nil, false
	}
	if err := run.Run(); err != nil {
		log.Printf("pattern %q: run: %v", name, err)
		r.failed[name] = true
		return nil, false
	}

	raw := run.Get("offsets").Array()
	offsets := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			offsets = append(offsets, n)
		case int64:
			offsets = append(offsets, float64(n))
		}
	}
	if len(offsets) == 0 {
		return nil, false
	}
	return offsets, true
}

// Invalidate drops a compiled pattern so the next shot recompiles it.
// The hot-reload system calls this when a script file changes.
func (r *PatternRuntime) Invalidate(name string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.compiled, name)
	delete(r.failed, name)
}

func (r *PatternRuntime) compile(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name + ".tengo")
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("pellets", 0); err != nil {
		return nil, err
	}
	if err := script.Add("spread", 0.0); err != nil {
		return nil, err
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
