package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	profileBuildsName = "core_resource_profile_builds_total"
	engineCallsName   = "core_engine_calls_total"

	// ModeLocal marks operations served from in-process state
	ModeLocal = "local"
	// ModeDelegated marks operations forwarded to an engine session
	ModeDelegated = "delegated"

	// OutcomeOK .
	OutcomeOK = "ok"
	// OutcomeError .
	OutcomeError = "error"
)

// Metrics define metrics
type Metrics struct {
	ProfileBuilds *prometheus.CounterVec
	EngineCalls   *prometheus.CounterVec
}

// Client is the global metrics client, callers expose its collectors
// through their own registry / handler
var Client = New()

// New .
func New() *Metrics {
	return &Metrics{
		ProfileBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: profileBuildsName,
			Help: "finalized resource profiles by builder mode",
		}, []string{"mode"}),
		EngineCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: engineCallsName,
			Help: "synchronous round-trips to the engine session",
		}, []string{"op", "outcome"}),
	}
}

// SendProfileBuild updates the build counter
func (m *Metrics) SendProfileBuild(mode string) {
	m.ProfileBuilds.WithLabelValues(mode).Inc()
}

// SendEngineCall updates the round-trip counter
func (m *Metrics) SendEngineCall(op string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.EngineCalls.WithLabelValues(op, outcome).Inc()
}

func init() {
	prometheus.MustRegister(Client.ProfileBuilds, Client.EngineCalls)
}
