// Package timing provides a lightweight named-section stopwatch. Sections
// record wall-clock durations into a global registry which can be
// snapshotted, reset, or dumped through the library logger.
//
// Recording is off unless the MLPOLY_TIMING environment variable is set to
// "1" (or Enabled is toggled programmatically); when disabled, the API is
// inert and essentially free.
package timing

import (
	"os"
	"sync"
	"time"

	"github.com/consensys/mlpoly/logger"
)

// Enabled gates all recording.
var Enabled bool

var global = &registry{durations: make(map[string]time.Duration)}

func init() {
	Enabled = os.Getenv("MLPOLY_TIMING") == "1"
}

type registry struct {
	mu        sync.Mutex
	durations map[string]time.Duration
}

func (r *registry) add(name string, d time.Duration) {
	r.mu.Lock()
	r.durations[name] += d
	r.mu.Unlock()
}

// Span is an in-flight measurement of a named section.
type Span struct {
	name  string
	start time.Time
}

// Start begins timing a named section. Durations of sections with the
// same name accumulate.
func Start(name string) Span {
	return Span{name: name, start: time.Now()}
}

// Stop records the elapsed time since Start.
func (s Span) Stop() {
	if !Enabled {
		return
	}
	global.add(s.name, time.Since(s.start))
}

// Section times the execution of f under the given name.
func Section(name string, f func()) {
	s := Start(name)
	f()
	s.Stop()
}

// Snapshot returns a copy of the accumulated durations.
func Snapshot() map[string]time.Duration {
	global.mu.Lock()
	defer global.mu.Unlock()
	out := make(map[string]time.Duration, len(global.durations))
	for k, v := range global.durations {
		out[k] = v
	}
	return out
}

// SnapshotAndReset returns the accumulated durations and clears the
// registry.
func SnapshotAndReset() map[string]time.Duration {
	global.mu.Lock()
	defer global.mu.Unlock()
	out := global.durations
	global.durations = make(map[string]time.Duration)
	return out
}

// Dump logs the accumulated durations through the library logger.
func Dump() {
	log := logger.Logger()
	for name, d := range Snapshot() {
		log.Info().Str("section", name).Dur("took", d).Msg("timing")
	}
}
