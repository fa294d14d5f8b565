/*
   Copyright 2025 The DIRPX Authors

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

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports catalog size as Prometheus metrics. Values are computed
// from a snapshot at scrape time.
type Collector struct {
	reg          *Registry
	declarations *prometheus.Desc
	submissions  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector over r.
func NewCollector(r *Registry) *Collector {
	return &Collector{
		reg: r,
		declarations: prometheus.NewDesc(
			"errcode_declarations",
			"Number of unique error code declarations per category.",
			[]string{"category"}, nil,
		),
		submissions: prometheus.NewDesc(
			"errcode_submissions_total",
			"Number of declarations submitted, duplicates included.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.declarations
	ch <- c.submissions
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.reg.Snapshot()

	perCategory := make(map[string]int)
	for _, d := range snap.Unique() {
		perCategory[d.Category().Flag().Tagged()]++
	}
	for cat, n := range perCategory {
		ch <- prometheus.MustNewConstMetric(c.declarations, prometheus.GaugeValue, float64(n), cat)
	}
	ch <- prometheus.MustNewConstMetric(c.submissions, prometheus.CounterValue, float64(len(snap)))
}
