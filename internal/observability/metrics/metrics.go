package metrics

import "github.com/prometheus/client_golang/prometheus"

// CampaignMetrics exposes counters for campaign runs.
type CampaignMetrics struct {
	draftsTotal *prometheus.CounterVec
	sendsTotal  *prometheus.CounterVec
	skipsTotal  *prometheus.CounterVec
}

func NewCampaignMetrics(reg prometheus.Registerer) *CampaignMetrics {
	m := &CampaignMetrics{
		draftsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Subsystem: "campaign",
			Name:      "drafts_total",
			Help:      "Total email drafts composed",
		}, []string{"kind", "status"}),
		sendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Subsystem: "campaign",
			Name:      "sends_total",
			Help:      "Total email send attempts",
		}, []string{"status"}),
		skipsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Subsystem: "campaign",
			Name:      "skips_total",
			Help:      "Total rows skipped by reason",
		}, []string{"reason"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.draftsTotal, m.sendsTotal, m.skipsTotal)
	return m
}

// ObserveDraft records a draft composition attempt. kind is "initial" or
// "followup"; status is "ok" or "error".
func (m *CampaignMetrics) ObserveDraft(kind, status string) {
	if m == nil {
		return
	}
	m.draftsTotal.WithLabelValues(kind, status).Inc()
}

// ObserveSend records a send attempt outcome.
func (m *CampaignMetrics) ObserveSend(status string) {
	if m == nil {
		return
	}
	m.sendsTotal.WithLabelValues(status).Inc()
}

// ObserveSkip records a skipped row.
func (m *CampaignMetrics) ObserveSkip(reason string) {
	if m == nil {
		return
	}
	m.skipsTotal.WithLabelValues(reason).Inc()
}
