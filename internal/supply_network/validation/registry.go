package validation

import (
	"sort"
	"sync"
)

var (
	mu         sync.RWMutex
	registered = map[string]Check{}
)

func Register(c Check) {
	if c == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered[c.Name()] = c
}

// All returns the registered checks by rank, then name.
func All() []Check {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Check, 0, len(registered))
	for _, c := range registered {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank() != out[j].Rank() {
			return out[i].Rank() < out[j].Rank()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
