package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector aggregates the pipeline counters. It is registered once in main
// and injected into the components that emit events.
type Collector struct {
	verdicts          *prometheus.CounterVec
	providerFailures  *prometheus.CounterVec
	providerFallbacks *prometheus.CounterVec
	emergencySignals  prometheus.Counter
}

func NewCollector() *Collector {
	return &Collector{
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatguard_verdicts_total",
			Help: "Moderation verdicts by decision and category.",
		}, []string{"decision", "category"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatguard_provider_failures_total",
			Help: "External provider calls that failed open, by provider and cause.",
		}, []string{"provider", "cause"}),
		providerFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatguard_provider_fallbacks_total",
			Help: "Secondary-model fallback attempts by provider.",
		}, []string{"provider"}),
		emergencySignals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatguard_emergency_signals_total",
			Help: "Messages that triggered the contact-staff safety prompt.",
		}),
	}
}

// Register attaches all collectors to the given registry.
func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(c.verdicts, c.providerFailures, c.providerFallbacks, c.emergencySignals)
}

func (c *Collector) ObserveVerdict(decision, category string) {
	if category == "" {
		category = "none"
	}
	c.verdicts.WithLabelValues(decision, category).Inc()
}

func (c *Collector) ObserveProviderFailure(provider, cause string) {
	c.providerFailures.WithLabelValues(provider, cause).Inc()
}

func (c *Collector) ObserveProviderFallback(provider string) {
	c.providerFallbacks.WithLabelValues(provider).Inc()
}

func (c *Collector) ObserveEmergencySignal() {
	c.emergencySignals.Inc()
}
