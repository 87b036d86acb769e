package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Registry is the central metrics facade for a play session
// Components cache metric pointers at wiring time and write atomics directly afterwards
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is one rendered registry entry
type Metric struct {
	Key   string
	Value string
}

// Snapshot renders every metric as text, sorted by key
// Floats use three decimals to match the score display
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())

	r.Bools.Range(func(key string, v *atomic.Bool) {
		out = append(out, Metric{key, fmt.Sprintf("%t", v.Load())})
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{key, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{key, fmt.Sprintf("%.3f", v.Get())})
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, Metric{key, v.Load()})
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
