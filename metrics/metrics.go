// Package metrics exports the state of an hstr.Shards to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bobg/hstr"
)

var _ prometheus.Collector = &Collector{}

// Collector reports, for each shard of a Shards,
// the number of interned Strs and the arena bytes used and reserved.
// Each scrape locks the shards one at a time.
type Collector struct {
	shards *hstr.Shards

	entries  *prometheus.Desc
	used     *prometheus.Desc
	reserved *prometheus.Desc
}

// NewCollector produces a Collector for s.
// Metric names begin with the given namespace,
// e.g. "hstr" for hstr_shard_entries.
func NewCollector(s *hstr.Shards, namespace string) *Collector {
	labels := []string{"shard"}
	return &Collector{
		shards: s,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "shard", "entries"),
			"Number of interned strings in the shard.",
			labels, nil,
		),
		used: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "shard", "used_bytes"),
			"Bytes handed out by the shard's arena, hashes included.",
			labels, nil,
		),
		reserved: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "shard", "reserved_bytes"),
			"Content bytes the shard's arena has obtained from the runtime.",
			labels, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.used
	ch <- c.reserved
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.shards.Stats()
	for i, st := range stats {
		shard := strconv.Itoa(i)
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Entries), shard)
		ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(st.Used), shard)
		ch <- prometheus.MustNewConstMetric(c.reserved, prometheus.GaugeValue, float64(st.Reserved), shard)
	}
}
