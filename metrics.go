package spawnpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Metrics holds the counters shared by every pool configured WithMetrics.
// A nil *Metrics records nothing.
type Metrics struct {
	Spawns   *prometheus.CounterVec
	Despawns *prometheus.CounterVec
	Clears   *prometheus.CounterVec
}

// NewMetrics registers the pool counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Spawns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "spawnpool_spawns_total",
			Help: "Total number of spawn attempts, by pool and result (hit or miss).",
		}, []string{"pool", "result"}),
		Despawns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "spawnpool_despawns_total",
			Help: "Total number of objects returned to a pool.",
		}, []string{"pool"}),
		Clears: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "spawnpool_clears_total",
			Help: "Total number of times a pool was cleared.",
		}, []string{"pool"}),
	}
}

func (m *Metrics) spawned(pool string, found bool) {
	if m == nil {
		return
	}

	result := resultMiss
	if found {
		result = resultHit
	}

	m.Spawns.WithLabelValues(pool, result).Inc()
}

func (m *Metrics) despawned(pool string) {
	if m == nil {
		return
	}

	m.Despawns.WithLabelValues(pool).Inc()
}

func (m *Metrics) cleared(pool string) {
	if m == nil {
		return
	}

	m.Clears.WithLabelValues(pool).Inc()
}
