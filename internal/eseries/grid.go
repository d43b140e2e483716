package eseries

import "sync"

// Default grid bounds in kilo-ohms. Values outside this range exist, but
// the feedback dividers this tool targets live comfortably inside it.
const (
	DefaultMinKOhm = 0.1
	DefaultMaxKOhm = 1000.0
)

// standardValues is computed at most once. The grid is a pure function of
// the default bounds, so a single immutable slice can be shared read-only
// across concurrent requests.
var standardValues = sync.OnceValue(func() []float64 {
	return Combined(DefaultMinKOhm, DefaultMaxKOhm)
})

// StandardValues returns the combined E24 and E96 grid over the default
// bounds. Callers must not mutate the returned slice.
func StandardValues() []float64 {
	return standardValues()
}

// Combined returns the union of the E24 and E96 series between the given
// bounds, sorted ascending. Unlike StandardValues it recomputes on every
// call, so prefer StandardValues for the default bounds.
func Combined(minKOhm, maxKOhm float64) []float64 {
	e24, _ := Generate(E24, minKOhm, maxKOhm)
	e96, _ := Generate(E96, minKOhm, maxKOhm)
	return dedupSorted(append(e24, e96...))
}
