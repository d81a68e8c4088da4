// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/dagcommit/metrics"
	"github.com/luxfi/dagcommit/utils/wrappers"
)

// Metrics is what the rule records per commit, built on the metrics
// package's generic Counter/Averager primitives; see DESIGN.md. Only
// BatchSize is registered with prometheus (when NewMetrics gets a
// non-nil registerer); CommitsTotal and FailedAnchorsTotal are
// in-memory counters.
type Metrics struct {
	CommitsTotal       metrics.Counter
	FailedAnchorsTotal metrics.Counter
	BatchSize          metrics.Averager
}

// defaultMetricsNamespace prefixes the rule's series when a caller
// doesn't supply one via config.Config.MetricsNamespace.
const defaultMetricsNamespace = "commitrule"

// NewMetrics registers the commit rule's averager series against reg,
// named "<namespace>_batch_size", and returns a Metrics. An empty
// namespace falls back to defaultMetricsNamespace. A nil reg yields an
// unregistered, in-memory-only Metrics — useful for tests and for
// callers that don't export prometheus series at all.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		CommitsTotal:       metrics.NewCounter(),
		FailedAnchorsTotal: metrics.NewCounter(),
	}

	if reg == nil {
		m.BatchSize = &unregisteredAverager{}
		return m, nil
	}

	if namespace == "" {
		namespace = defaultMetricsNamespace
	}

	errs := &wrappers.Errs{}
	m.BatchSize = metrics.NewAveragerWithErrs(namespace+"_batch_size", "nodes per committed batch", reg, errs)
	if errs.Errored() {
		return nil, errs.Err()
	}
	return m, nil
}

// observeCommit records one committed anchor's batch size and failed-
// anchor count. A nil Metrics is a valid no-op receiver so callers that
// construct a Rule without metrics never need a nil check.
func (m *Metrics) observeCommit(blockCount, failedAnchorCount int) {
	if m == nil {
		return
	}
	m.CommitsTotal.Inc()
	m.FailedAnchorsTotal.Add(int64(failedAnchorCount))
	m.BatchSize.Observe(float64(blockCount))
}

// unregisteredAverager is a bare in-memory Averager with no prometheus
// binding, used when NewMetrics is given a nil registerer.
type unregisteredAverager struct {
	sum, count float64
}

func (a *unregisteredAverager) Observe(value float64) {
	a.sum += value
	a.count++
}

func (a *unregisteredAverager) Read() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / a.count
}

var _ metrics.Averager = (*unregisteredAverager)(nil)
