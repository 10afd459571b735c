package web

import (
	"github.com/prometheus/client_golang/prometheus"

	"arbiter/internal/schedule"
)

type metrics struct {
	submissions *prometheus.CounterVec
	games       prometheus.Counter
	logins      *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arbiter_bulk_pairing_submissions_total",
			Help: "Bulk pairing submissions by outcome.",
		}, []string{"outcome"}),
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbiter_scheduled_games_total",
			Help: "Games created through bulk pairings.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arbiter_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.submissions, m.games, m.logins)
	return m
}

func (m *metrics) observeSubmission(f schedule.Feedback) {
	m.submissions.WithLabelValues(f.Kind().String()).Inc()
	if result, ok := f.Result(); ok {
		m.games.Add(float64(len(result.Games)))
	}
}
