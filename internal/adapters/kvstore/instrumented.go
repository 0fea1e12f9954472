package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ domain.KeyValueStore = (*InstrumentedStore)(nil)

type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the store collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streak_radar",
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Key/value store operations by backend, operation and result.",
			},
			[]string{"backend", "op", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "streak_radar",
				Subsystem: "store",
				Name:      "operation_duration_seconds",
				Help:      "Latency of key/value store operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "op"},
		),
	}
}

type InstrumentedStore struct {
	next    domain.KeyValueStore
	backend string
	metrics *Metrics
}

func NewInstrumentedStore(next domain.KeyValueStore, backend string, metrics *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend, metrics: metrics}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		result = "miss"
	case err != nil:
		result = "error"
	}
	s.metrics.ops.WithLabelValues(s.backend, op, result).Inc()
	s.metrics.duration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	val, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return val, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Remove(ctx, key)
	s.observe("remove", start, err)
	return err
}
