// Package textpool keeps the named sets of canned replies and picks one at random.
package textpool

import (
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"
)

var (
	ErrEmptyPool   = errors.New("text pool is empty")
	ErrUnknownPool = errors.New("text pool is not registered")
)

// Registry is read-only once built and safe for concurrent use
// as long as the random source is.
type Registry struct {
	pools map[string][]string
	intn  func(n int) int
}

// New copies pools into a registry. intn must return a value in [0, n);
// nil means math/rand.Intn.
func New(pools map[string][]string, intn func(n int) int) (*Registry, error) {
	if intn == nil {
		intn = rand.Intn
	}
	r := &Registry{
		pools: make(map[string][]string, len(pools)),
		intn:  intn,
	}
	for name, texts := range pools {
		if len(texts) == 0 {
			return nil, fmt.Errorf("pool %q: %w", name, ErrEmptyPool)
		}
		r.pools[name] = slices.Clone(texts)
	}
	return r, nil
}

// Require checks that every named pool is registered.
func (r *Registry) Require(names ...string) error {
	for _, name := range names {
		if _, found := r.pools[name]; !found {
			return fmt.Errorf("pool %q: %w", name, ErrUnknownPool)
		}
	}
	return nil
}

// Pick returns a uniformly chosen entry of the pool, or "" for an unknown pool.
func (r *Registry) Pick(name string) string {
	texts := r.pools[name]
	if len(texts) == 0 {
		return ""
	}
	return texts[r.intn(len(texts))]
}

// Names returns registered pool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
