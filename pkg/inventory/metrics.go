/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package inventory

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "vmss_inventory"

// Query labels of the query_failures metric.
const (
	QueryInstances = "instances"
	QueryIPs       = "ips"
	QuerySecret    = "secret"
)

// Metrics is a prometheus.Collector describing the last inventory run. A nil
// *Metrics records nothing.
type Metrics struct {
	hosts         prometheus.Gauge
	skipped       prometheus.Gauge
	queryFailures *prometheus.GaugeVec
	lastRun       prometheus.Gauge
}

// NewMetrics returns a new Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		hosts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "hosts",
				Help:      "The number of hosts in the generated inventory.",
			},
		),
		skipped: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "skipped_instances",
				Help:      "The number of paired instances left out of the inventory.",
			},
		),
		queryFailures: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "query_failures",
				Help:      "Whether an Azure query failed during the last run.",
			}, []string{"query"},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "The time the inventory was last generated.",
			},
		),
	}
	for _, q := range []string{QueryInstances, QueryIPs, QuerySecret} {
		m.queryFailures.WithLabelValues(q).Set(0)
	}
	return m
}

// Describe is part of the prometheus.Collector interface.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.hosts.Describe(ch)
	m.skipped.Describe(ch)
	m.queryFailures.Describe(ch)
	m.lastRun.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.hosts.Collect(ch)
	m.skipped.Collect(ch)
	m.queryFailures.Collect(ch)
	m.lastRun.Collect(ch)
}

// QueryFailed records a failed query.
func (m *Metrics) QueryFailed(query string) {
	if m == nil {
		return
	}
	m.queryFailures.WithLabelValues(query).Set(1)
}

// ObserveInventory records the outcome of assembling inv.
func (m *Metrics) ObserveInventory(inv *Inventory) {
	if m == nil {
		return
	}
	m.hosts.Set(float64(len(inv.ScaleSet().Hosts)))
	m.skipped.Set(float64(inv.Skipped()))
	m.lastRun.SetToCurrentTime()
}

// WriteToTextfile writes the metrics to path in the node_exporter textfile format.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	r := prometheus.NewRegistry()
	if err := r.Register(m); err != nil {
		return errors.Wrap(err, "failed to register inventory metrics")
	}
	if err := prometheus.WriteToTextfile(path, r); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
