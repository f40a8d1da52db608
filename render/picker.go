package render

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Picker chooses an index uniformly among m candidates: 0 <= Picker(m) <
// max(m, 1). A Picker that returns a value outside that range causes the
// Iterator to fail with an InvalidPick error on the advance that called
// it (spec §4.5, §7).
type Picker func(m int) int

// seedCounter is incremented, under defaultRNG.mu, exactly once: when
// the shared default generator is first seeded. Its value is added to
// the start-time-derived seed (spec §9, "Default picker as process-wide
// state").
var seedCounter int64

// processStart is captured at package initialisation and stands in for
// the process start time in the default generator's seed.
var processStart = time.Now()

var defaultRNG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// DefaultPicker returns the process-wide convenience picker: a
// mutex-guarded pseudo-random generator seeded once, lazily, from
// process start time combined with a monotonic counter.
//
// Go has no notion of implicit per-OS-thread state the way the source
// system does; this implementation approximates "thread-local" with a
// single shared generator behind a mutex, which is the idiomatic Go
// reading of spec §9's convenience picker. It must not be used when
// results must be reproducible across processes or runs — use
// NewSeededPicker for that.
func DefaultPicker() Picker {
	return func(m int) int {
		defaultRNG.mu.Lock()
		defer defaultRNG.mu.Unlock()
		if defaultRNG.rng == nil {
			seed := processStart.UnixNano() + atomic.AddInt64(&seedCounter, 1)
			defaultRNG.rng = rand.New(rand.NewSource(seed))
		}
		return intn(defaultRNG.rng, m)
	}
}

// NewSeededPicker returns a Picker wrapping a deterministic
// pseudo-random generator seeded with seed. Two pickers built from the
// same seed and driven through the same sequence of window sizes
// produce identical picks, which is what spec §8 property 7 (rendering
// idempotence) requires of callers that want reproducibility.
func NewSeededPicker(seed int64) Picker {
	rng := rand.New(rand.NewSource(seed))
	var mu sync.Mutex
	return func(m int) int {
		mu.Lock()
		defer mu.Unlock()
		return intn(rng, m)
	}
}

func intn(rng *rand.Rand, m int) int {
	if m <= 0 {
		return 0
	}
	return rng.Intn(m)
}
