// Package recommend picks one activity from a candidate set while steering
// away from recently played ones.
package recommend

import (
	"math/rand/v2"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// Source is the random source used for tie-breaking. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG source. A zero seed derives one from the
// wall clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))
}

// Select returns a uniformly random candidate whose id is not in recent. If
// every candidate was played recently it falls back to a uniformly random
// candidate from the full list. The boolean is false only when candidates
// is empty.
func Select(candidates []domain.Activity, recent domain.RecencyQueue, src Source) (domain.Activity, bool) {
	if len(candidates) == 0 {
		return domain.Activity{}, false
	}

	fresh := make([]domain.Activity, 0, len(candidates))
	for _, a := range candidates {
		if !recent.Contains(a.ID) {
			fresh = append(fresh, a)
		}
	}

	if len(fresh) > 0 {
		return fresh[src.IntN(len(fresh))], true
	}
	return candidates[src.IntN(len(candidates))], true
}

// SelectSOS picks uniformly among the SOS-flagged activities in all, with no
// recency filtering. The boolean is false when none are flagged.
func SelectSOS(all []domain.Activity, src Source) (domain.Activity, bool) {
	sos := make([]domain.Activity, 0, len(all))
	for _, a := range all {
		if a.IsSOS {
			sos = append(sos, a)
		}
	}
	if len(sos) == 0 {
		return domain.Activity{}, false
	}
	return sos[src.IntN(len(sos))], true
}

// IsFresh reports whether Select would have treated a as fresh.
func IsFresh(a domain.Activity, recent domain.RecencyQueue) bool {
	return !recent.Contains(a.ID)
}
