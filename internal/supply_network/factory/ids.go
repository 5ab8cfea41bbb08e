package factory

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const (
	LinkPrefix   = "link"
	DemandPrefix = "demand"
)

// Sequence issues "<prefix>_<n>" identifiers. An id is never issued twice,
// and ids observed from loaded data are never issued either.
type Sequence struct {
	mu   sync.Mutex
	next map[string]int
	used map[string]struct{}
}

func NewSequence() *Sequence {
	return &Sequence{
		next: map[string]int{},
		used: map[string]struct{}{},
	}
}

func (s *Sequence) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		s.next[prefix]++
		id := fmt.Sprintf("%s_%d", prefix, s.next[prefix])
		if _, taken := s.used[id]; taken {
			continue
		}
		s.used[id] = struct{}{}
		return id
	}
}

// Observe records an id that entered the session from outside (load, import).
func (s *Sequence) Observe(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.used[id] = struct{}{}
	i := strings.LastIndexByte(id, '_')
	if i <= 0 {
		return
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n <= 0 {
		return
	}
	prefix := id[:i]
	if n > s.next[prefix] {
		s.next[prefix] = n
	}
}
