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

package inspector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/envinspect/pkg/collector"
	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/render"
	"github.com/NVIDIA/envinspect/pkg/report"
	"github.com/NVIDIA/envinspect/pkg/serializer"
	"github.com/NVIDIA/envinspect/pkg/store"
)

// Inspector runs one inspection: collect, assemble, render and optionally save.
type Inspector struct {
	// Factory creates the collectors. If nil, the default factory is used.
	Factory collector.Factory

	// Output selects the renderer. Empty means OutputText.
	Output Output

	// Verbose lists environment variables in text output.
	Verbose bool

	// TrueUsedMemory shows total minus free memory in text output.
	TrueUsedMemory bool

	// Save persists the report after rendering.
	Save bool

	// Store receives saved reports. If nil, a store in the default directory is used.
	Store *store.Store

	// Out receives the rendered report. If nil, os.Stdout is used.
	Out io.Writer

	// Err receives notices that must not mix with structured output. If nil, os.Stderr is used.
	Err io.Writer

	// Clear resets the terminal before text output. Nil disables clearing.
	Clear func()

	metrics *collectionMetrics
}

// Registry returns the registry holding collection timings.
func (i *Inspector) Registry() *prometheus.Registry {
	return i.ensureMetrics().registry
}

func (i *Inspector) ensureMetrics() *collectionMetrics {
	if i.metrics == nil {
		i.metrics = newCollectionMetrics()
	}
	return i.metrics
}

// Run performs the inspection and writes the result.
func (i *Inspector) Run(ctx context.Context) error {
	out := i.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := i.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	output := i.Output
	if output == "" {
		output = OutputText
	}
	if _, err := ParseOutput(string(output)); err != nil {
		return err
	}

	if !output.Structured() && i.Clear != nil {
		i.Clear()
	}

	rep, err := i.Collect(ctx)
	if err != nil {
		return err
	}

	if err := i.render(ctx, out, output, rep); err != nil {
		return err
	}

	if !i.Save {
		return nil
	}

	s := i.Store
	if s == nil {
		if s, err = store.New(""); err != nil {
			return err
		}
	}
	path, err := s.Save(ctx, rep)
	if err != nil {
		return err
	}

	notice := out
	if output.Structured() {
		notice = errOut
	}
	if _, err := fmt.Fprintf(notice, "\n✅ Report saved to: %s\n\n", path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write save notice", err)
	}
	return nil
}

func (i *Inspector) render(ctx context.Context, w io.Writer, output Output, rep *report.Report) error {
	var err error
	switch output {
	case OutputText:
		err = render.TextRenderer{Verbose: i.Verbose, TrueUsedMemory: i.TrueUsedMemory}.Render(w, rep)
	case OutputPrometheus:
		err = render.MetricsRenderer{Gatherers: []prometheus.Gatherer{i.Registry()}}.Render(w, rep)
	default:
		format, _ := output.serializerFormat()
		var s serializer.Serializer = serializer.NewWriter(format, w)
		err = s.Serialize(ctx, rep)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to render report", err)
	}
	return nil
}

// Collect runs the system, process and environment collectors in that order
// and assembles their results. The first failure aborts the run.
func (i *Inspector) Collect(ctx context.Context) (*report.Report, error) {
	if i.Factory == nil {
		i.Factory = collector.NewDefaultFactory()
	}
	m := i.ensureMetrics()

	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()

	slog.Debug("starting inspection")

	start := time.Now()
	defer func() {
		m.duration.Observe(time.Since(start).Seconds())
	}()

	rep, err := i.collect(ctx, m)
	if err != nil {
		m.total.WithLabelValues("error").Inc()
		return nil, err
	}
	m.total.WithLabelValues("success").Inc()

	slog.Debug("inspection complete", "duration", time.Since(start))
	return rep, nil
}

func (i *Inspector) collect(ctx context.Context, m *collectionMetrics) (*report.Report, error) {
	sys, err := collect(ctx, m, "system", i.Factory.CreateSystemCollector())
	if err != nil {
		return nil, err
	}

	proc, err := collect(ctx, m, "process", i.Factory.CreateProcessCollector())
	if err != nil {
		return nil, err
	}

	env, err := collect(ctx, m, "environment", i.Factory.CreateEnvironmentCollector())
	if err != nil {
		return nil, err
	}

	return report.Assemble(*sys, *proc, *env), nil
}

func collect[T any](ctx context.Context, m *collectionMetrics, name string, c collector.Collector[T]) (*T, error) {
	start := time.Now()
	defer func() {
		m.collector.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	res, err := c.Collect(ctx)
	if err != nil {
		slog.Error("collector failed", "collector", name, "error", err)
		return nil, fmt.Errorf("failed to collect %s information: %w", name, err)
	}
	if res == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInternal, "collector returned no data",
			map[string]any{"collector": name})
	}
	return res, nil
}
