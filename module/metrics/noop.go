package metrics

import (
	"github.com/filament-chain/filament/model/relay"
)

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) InherentProcessed(bitfields int, candidates int, weight relay.Weight) {}
func (nc *NoopCollector) BitfieldsDropped(count int)                                          {}
func (nc *NoopCollector) CandidatesDropped(count int)                                         {}
func (nc *NoopCollector) FrozenShortCircuit()                                                 {}
func (nc *NoopCollector) EmptyBundleFallback()                                                {}
