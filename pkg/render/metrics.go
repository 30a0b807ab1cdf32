// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/NVIDIA/envinspect/pkg/report"
)

const namespace = "envinspect"

// MetricsRenderer writes the report as Prometheus text exposition, suitable
// for the node_exporter textfile collector.
type MetricsRenderer struct {
	// Gatherers contribute additional families, e.g. collection timings.
	Gatherers []prometheus.Gatherer
}

// Render writes r to w.
func (m MetricsRenderer) Render(w io.Writer, r *report.Report) error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "memory_total_bytes",
		Help:      "Total system memory in bytes",
	}).Set(float64(r.System.TotalBytes))

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "memory_free_bytes",
		Help:      "Memory available to new processes in bytes",
	}).Set(float64(r.System.FreeBytes))

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_uptime_seconds",
		Help:      "Seconds since the inspector process started",
	}).Set(r.Process.Uptime)

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "environment_variables",
		Help:      "Number of variables in the process environment",
	}).Set(float64(r.Environment.EnvironmentVariables.Count()))

	factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "info",
		Help:      "Runtime and host identification",
	}, []string{"go_version", "compiler", "platform", "architecture", "os_type"}).
		WithLabelValues(r.System.GoVersion, r.System.Compiler, r.System.Platform,
			r.System.Architecture, r.System.OSType).
		Set(1)

	gatherers := append(prometheus.Gatherers{reg}, m.Gatherers...)
	families, err := gatherers.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
