package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/filament-chain/filament/model/relay"
)

const (
	namespaceRelay    = "relay"
	subsystemInherent = "inherent"
)

// InherentCollector tracks metrics of parachain inherent processing.
type InherentCollector struct {
	inherentsProcessed  prometheus.Counter
	acceptedBitfields   prometheus.Counter
	acceptedCandidates  prometheus.Counter
	droppedBitfields    prometheus.Counter
	droppedCandidates   prometheus.Counter
	consumedWeight      prometheus.Gauge
	frozenShortCircuits prometheus.Counter
	emptyFallbacks      prometheus.Counter
}

func NewInherentCollector() *InherentCollector {

	ic := &InherentCollector{

		inherentsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "processed_total",
			Help:      "count of inherent bundles processed",
		}),

		acceptedBitfields: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "accepted_bitfields_total",
			Help:      "count of availability bitfields accepted",
		}),

		acceptedCandidates: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "accepted_candidates_total",
			Help:      "count of backed candidates accepted",
		}),

		droppedBitfields: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "dropped_bitfields_total",
			Help:      "count of availability bitfields dropped during sanitization or weight limiting",
		}),

		droppedCandidates: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "dropped_candidates_total",
			Help:      "count of backed candidates dropped during sanitization or limiting",
		}),

		consumedWeight: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "consumed_weight",
			Help:      "weight consumed by the last processed inherent",
		}),

		frozenShortCircuits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "frozen_short_circuits_total",
			Help:      "count of inherents short-circuited because the chain was frozen",
		}),

		emptyFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemInherent,
			Name:      "empty_bundle_fallbacks_total",
			Help:      "count of author-side dry-run failures falling back to an empty bundle",
		}),
	}

	return ic
}

func (ic *InherentCollector) InherentProcessed(bitfields int, candidates int, weight relay.Weight) {
	ic.inherentsProcessed.Inc()
	ic.acceptedBitfields.Add(float64(bitfields))
	ic.acceptedCandidates.Add(float64(candidates))
	ic.consumedWeight.Set(float64(weight))
}

func (ic *InherentCollector) BitfieldsDropped(count int) {
	ic.droppedBitfields.Add(float64(count))
}

func (ic *InherentCollector) CandidatesDropped(count int) {
	ic.droppedCandidates.Add(float64(count))
}

func (ic *InherentCollector) FrozenShortCircuit() {
	ic.frozenShortCircuits.Inc()
}

func (ic *InherentCollector) EmptyBundleFallback() {
	ic.emptyFallbacks.Inc()
}
