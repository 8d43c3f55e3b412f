package app

import (
	"time"

	"github.com/iov-one/mswallet"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mswallet"

// Metrics is a decorator that counts processed transactions and measures
// how long they take, labeled by call and message path.
type Metrics struct {
	txs      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ mswallet.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator and registers its collectors with
// reg. Panics if the collectors are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transactions_total",
			Help:      "Number of processed transactions.",
		}, []string{"call", "path", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "transaction_duration_seconds",
			Help:      "Time spent processing a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"call", "path"}),
	}
	reg.MustRegister(m.txs, m.duration)
	return m
}

// Check observes the check call.
func (m *Metrics) Check(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Checker) (*mswallet.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver observes the deliver call.
func (m *Metrics) Deliver(ctx mswallet.Context, store mswallet.KVStore, tx mswallet.Tx, next mswallet.Deliverer) (*mswallet.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m *Metrics) observe(call string, tx mswallet.Tx, start time.Time, err error) {
	path := mswallet.GetPath(tx)
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.txs.WithLabelValues(call, path, result).Inc()
	m.duration.WithLabelValues(call, path).Observe(time.Since(start).Seconds())
}
