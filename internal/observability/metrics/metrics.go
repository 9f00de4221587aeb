package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters for the lead intake flow.
type IntakeMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	leadsDeletedTotal  prometheus.Counter
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadintake",
			Subsystem: "api",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadintake",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Total lead alert emails by status",
		}, []string{"status"}),
		leadsDeletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadintake",
			Subsystem: "api",
			Name:      "leads_deleted_total",
			Help:      "Total leads removed by the admin delete endpoint",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notificationsTotal, m.leadsDeletedTotal)
	return m
}

// ObserveSubmission records a submission outcome: created, conflict,
// invalid, or error.
func (m *IntakeMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveNotification records a lead alert send: sent, failed, or skipped.
func (m *IntakeMetrics) ObserveNotification(status string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(status).Inc()
}

func (m *IntakeMetrics) ObserveLeadDeleted() {
	if m == nil {
		return
	}
	m.leadsDeletedTotal.Inc()
}
