// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package metrics exports the statistics of a decision diagram manager as
// Prometheus metrics.
package metrics

import (
	"github.com/dalzilio/bfdd"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is anything that can report manager statistics, usually a
// *bfdd.Manager. A Manager is not safe for concurrent use, so callers that
// expose metrics over HTTP while computing must serialize calls to Stats.
type Source interface {
	Stats() bfdd.Stats
}

// Collector is a prometheus.Collector reading the statistics of a Source on
// each scrape. Every metric, except the number of supports, has a "table"
// label with value "bdd" or "fdd".
type Collector struct {
	src Source

	supports     *prometheus.Desc
	nodes        *prometheus.Desc
	buckets      *prometheus.Desc
	uniqueAccess *prometheus.Desc
	uniqueHit    *prometheus.Desc
	uniqueMiss   *prometheus.Desc
	rehash       *prometheus.Desc
	cacheSize    *prometheus.Desc
	cacheHit     *prometheus.Desc
	cacheMiss    *prometheus.Desc
}

// NewCollector returns a Collector for src. All metric names start with
// namespace, which defaults to "bfdd" when empty.
func NewCollector(namespace string, src Source) *Collector {
	if namespace == "" {
		namespace = "bfdd"
	}
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &Collector{
		src:          src,
		supports:     desc("supports", "Number of supports (variables) of the manager."),
		nodes:        desc("nodes", "Number of interior nodes in the unique table.", "table"),
		buckets:      desc("buckets", "Number of buckets in the unique table.", "table"),
		uniqueAccess: desc("unique_access_total", "Accesses to the unique table.", "table"),
		uniqueHit:    desc("unique_hit_total", "Lookups in the unique table that found an existing node.", "table"),
		uniqueMiss:   desc("unique_miss_total", "Lookups in the unique table that created a node.", "table"),
		rehash:       desc("rehash_total", "Number of times the unique table grew.", "table"),
		cacheSize:    desc("cache_size", "Number of slots in the computed cache.", "table"),
		cacheHit:     desc("cache_hit_total", "Hits in the computed cache.", "table"),
		cacheMiss:    desc("cache_miss_total", "Misses in the computed cache.", "table"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.supports
	ch <- c.nodes
	ch <- c.buckets
	ch <- c.uniqueAccess
	ch <- c.uniqueHit
	ch <- c.uniqueMiss
	ch <- c.rehash
	ch <- c.cacheSize
	ch <- c.cacheHit
	ch <- c.cacheMiss
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.supports, prometheus.GaugeValue, float64(s.Supports))
	c.collectTable(ch, "bdd", s.BDD)
	c.collectTable(ch, "fdd", s.FDD)
}

func (c *Collector) collectTable(ch chan<- prometheus.Metric, table string, s bfdd.TableStats) {
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v), table)
	}
	counter := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), table)
	}
	gauge(c.nodes, s.Nodes)
	gauge(c.buckets, s.Buckets)
	counter(c.uniqueAccess, s.UniqueAccess)
	counter(c.uniqueHit, s.UniqueHit)
	counter(c.uniqueMiss, s.UniqueMiss)
	counter(c.rehash, s.Rehash)
	gauge(c.cacheSize, s.CacheSize)
	counter(c.cacheHit, s.CacheHit)
	counter(c.cacheMiss, s.CacheMiss)
}
