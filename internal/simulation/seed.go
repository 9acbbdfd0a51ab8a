package simulation

import "time"

// seedFunc returns an entropy-based master seed for runs that did not supply
// one (override for deterministic Monte Carlo tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the entropy seed source. Passing nil restores the
// default.
func SetSeedFunc(f func() int64) {
	if f == nil {
		seedFunc = func() int64 { return time.Now().UnixNano() }
		return
	}
	seedFunc = f
}

// subSeed derives a well-separated per-scenario seed from the master seed
// using the splitmix64 finalizer. Scenario s always gets the same sub-stream
// for a given master seed, which keeps results independent of how the
// scenarios are scheduled across goroutines.
func subSeed(master int64, scenario int) int64 {
	z := uint64(master) + uint64(scenario+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
