// Package metrics counts the enumeration and validation work of the dyck
// tool with prometheus collectors held in a private registry.
//
// The CLI has no server, so the registry is exposed by writing the text
// exposition format to a writer (stderr with --metrics).
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
)

// Recorder owns the collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry     *prometheus.Registry
	paths        *prometheus.CounterVec
	orderings    prometheus.Counter
	orientations prometheus.Counter
	checks       *prometheus.CounterVec
}

// NewRecorder registers the collectors; when cache is non-nil its hit/miss
// counters and size are exported as gauges read at scrape time.
func NewRecorder(cache *dyckpath.BoxCache) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		paths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dyck_paths_enumerated_total",
			Help: "Dyck paths produced by the enumerator.",
		}, []string{"primitive"}),
		orderings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dyck_orderings_total",
			Help: "Row orderings classified while enumerating orientations.",
		}),
		orientations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dyck_orientations_distinct_total",
			Help: "Distinct acyclic orientations produced.",
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dyck_orientation_checks_total",
			Help: "Orientation validations by outcome reason.",
		}, []string{"valid", "reason"}),
	}
	r.registry.MustRegister(r.paths, r.orderings, r.orientations, r.checks)

	if cache != nil {
		r.registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "dyck_box_cache_hits",
				Help: "BoxCache lookups answered from the memo.",
			}, func() float64 { return float64(cache.Stats().Hits) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "dyck_box_cache_misses",
				Help: "BoxCache lookups that derived the boxes.",
			}, func() float64 { return float64(cache.Stats().Misses) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "dyck_box_cache_entries",
				Help: "Distinct paths stored in the BoxCache.",
			}, func() float64 { return float64(cache.Stats().Size) }),
		)
	}

	return r
}

// Registry exposes the underlying registry (tests, embedding).
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObservePath counts one enumerated path.
func (r *Recorder) ObservePath(primitive bool) {
	if r == nil {
		return
	}
	r.paths.WithLabelValues(strconv.FormatBool(primitive)).Inc()
}

// ObserveOrientation matches orientation.WithOnOrientation: it counts every
// ordering and every fresh orientation.
func (r *Recorder) ObserveOrientation(_ orientation.Orientation, fresh bool) {
	if r == nil {
		return
	}
	r.orderings.Inc()
	if fresh {
		r.orientations.Inc()
	}
}

// ObserveCheck counts one Validate outcome.
func (r *Recorder) ObserveCheck(err error) {
	if r == nil {
		return
	}
	reason := orientation.Reason(err)
	if reason == "" {
		reason = "ok"
	}
	r.checks.WithLabelValues(strconv.FormatBool(err == nil), reason).Inc()
}

// WriteText gathers the registry and writes the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
