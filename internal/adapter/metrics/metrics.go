package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	lookups   *prometheus.CounterVec
	sends     prometheus.Counter
	coinsSent prometheus.Counter
	balance   prometheus.Gauge
}

func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coinsend",
			Name:      "lookups_total",
			Help:      "User lookups by outcome",
		}, []string{"outcome"}),
		sends: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "coinsend",
			Name:      "sends_total",
			Help:      "Completed send sequences",
		}),
		coinsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "coinsend",
			Name:      "coins_sent_total",
			Help:      "Coins debited by completed sends",
		}),
		balance: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "coinsend",
			Name:      "balance_coins",
			Help:      "Current coin balance",
		}),
	}
}

func (m *Metrics) ObserveLookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSend(coins int64) {
	m.sends.Inc()
	m.coinsSent.Add(float64(coins))
}

func (m *Metrics) SetBalance(coins int64) {
	m.balance.Set(float64(coins))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
