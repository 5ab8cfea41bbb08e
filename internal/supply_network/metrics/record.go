package metrics

import (
	"strconv"
	"time"
)

func (r *Registry) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (r *Registry) RecordMutation(operation string, err error) {
	r.MutationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func (r *Registry) RecordSaveTransition(from, to string) {
	r.SaveTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordRepositoryCall times a repository operation and counts failures.
func (r *Registry) RecordRepositoryCall(operation string, duration time.Duration, err error) {
	r.RepositoryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		r.RepositoryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// RecordSimulation takes the outcome label from the caller since failures
// split into engine and transport.
func (r *Registry) RecordSimulation(outcome string, duration time.Duration) {
	r.SimulationRunsTotal.WithLabelValues(outcome).Inc()
	r.SimulationDuration.Observe(duration.Seconds())
}

func (r *Registry) RecordFinding(check, severity string) {
	r.ValidationFindings.WithLabelValues(check, severity).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
