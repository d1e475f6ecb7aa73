package scheduler

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hearth/internal/core/domain"
)

const lockStripes = 64

// dateLocks serializes work per instance date inside the process. Dates are
// hashed onto a fixed set of mutexes.
type dateLocks struct {
	stripes [lockStripes]sync.Mutex
}

func stripeOf(d domain.Date) int {
	return int(xxhash.Sum64String(d.String()) % lockStripes)
}

// lock acquires the stripes of every date in ascending stripe order and
// returns the matching unlock.
func (l *dateLocks) lock(dates ...domain.Date) func() {
	idx := make([]int, 0, len(dates))
	for _, d := range dates {
		idx = append(idx, stripeOf(d))
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)

	for _, i := range idx {
		l.stripes[i].Lock()
	}
	return func() {
		for i := len(idx) - 1; i >= 0; i-- {
			l.stripes[idx[i]].Unlock()
		}
	}
}
