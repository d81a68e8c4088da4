// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics holds the primitives that commitrule.Metrics is built
// from: in-memory Counter and Gauge, and an Averager that can report to
// prometheus.
package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
)

// Metrics is a thin handle on a prometheus registerer, shared by every
// component that exports its own named series through it.
type Metrics struct {
    Registry prometheus.Registerer
}

// NewMetrics wraps a registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
    return &Metrics{
        Registry: reg,
    }
}

// Register registers a prometheus collector
func (m *Metrics) Register(collector prometheus.Collector) error {
    return m.Registry.Register(collector)
}
