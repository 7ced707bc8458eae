// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// kinds.go - name → constructor lookup used by declarative graph sources.

package builder

import (
	"fmt"
	"sort"
)

// Topology kind names accepted by ByKind.
const (
	KindCycle    = "cycle"
	KindPath     = "path"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindHouse    = "house"

	// Kinds that need more than n; resolved through Shape only.
	KindRandomSparse  = "random-sparse"
	KindRandomRegular = "random-regular"
)

var kinds = map[string]func(n int) Constructor{
	KindCycle:    Cycle,
	KindPath:     Path,
	KindStar:     Star,
	KindWheel:    Wheel,
	KindComplete: Complete,
	KindHouse:    func(int) Constructor { return House() },
}

// ByKind returns the constructor registered under kind, sized n.
// House ignores n.
func ByKind(kind string, n int) (Constructor, error) {
	mk, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("ByKind(%q): %w", kind, ErrUnknownKind)
	}
	return mk(n), nil
}

// Shape describes a topology by name. Degree is read by random-regular
// and P by random-sparse; both random kinds need WithSeed or WithRand.
type Shape struct {
	Kind   string
	N      int
	Degree int
	P      float64
}

// Constructor resolves s.
func (s Shape) Constructor() (Constructor, error) {
	switch s.Kind {
	case KindRandomSparse:
		return RandomSparse(s.N, s.P), nil
	case KindRandomRegular:
		return RandomRegular(s.N, s.Degree), nil
	}
	return ByKind(s.Kind, s.N)
}

// Kinds lists the names ByKind accepts, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
