/*
   Copyright 2025 The DIRPX Authors.

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

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/facteur/apis"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// PromObserver records builds and trait applications in Prometheus metrics.
type PromObserver struct {
	builds  *prometheus.CounterVec
	latency *prometheus.HistogramVec
	traits  *prometheus.CounterVec
}

// Ensure PromObserver implements apis.Observer.
var _ apis.Observer = (*PromObserver)(nil)

// NewPromObserver registers facteur metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromObserver(reg prometheus.Registerer) (*PromObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "facteur_builds_total",
		Help: "Total number of factory builds",
	}, []string{"factory", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "facteur_build_duration_seconds",
		Help:    "Time spent in factory constructors",
		Buckets: prometheus.DefBuckets,
	}, []string{"factory"})
	traits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "facteur_trait_applications_total",
		Help: "Total number of trait applications",
	}, []string{"trait", "outcome"})

	var err error
	if builds, err = register(reg, builds); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if traits, err = register(reg, traits); err != nil {
		return nil, err
	}

	return &PromObserver{builds: builds, latency: latency, traits: traits}, nil
}

// register registers c or returns the collector already registered in its place.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveBuild increments the build counter and records the build latency.
func (o *PromObserver) ObserveBuild(factory string, elapsed time.Duration, err error) {
	o.builds.WithLabelValues(factory, outcome(err)).Inc()
	o.latency.WithLabelValues(factory).Observe(elapsed.Seconds())
}

// ObserveTrait increments the trait application counter.
func (o *PromObserver) ObserveTrait(trait string, err error) {
	o.traits.WithLabelValues(trait, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
