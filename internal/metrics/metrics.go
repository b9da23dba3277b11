package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jobboard"

const (
	PushDelivered = "delivered"
	PushOffline   = "offline"
	PushFailed    = "failed"
)

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	notificationsCreated    prometheus.Counter
	notificationPersistFail prometheus.Counter
	notificationPush        *prometheus.CounterVec
	realtimeConnections     prometheus.Gauge
	realtimeRegisteredUsers prometheus.Gauge
	recommendationRequests  *prometheus.CounterVec
	maintenanceDeleted      prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		notificationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Notifications persisted by the dispatcher",
		}),
		notificationPersistFail: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_persist_failures_total",
			Help:      "Notifications that could not be persisted",
		}),
		notificationPush: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_push_total",
			Help:      "Realtime push attempts by result",
		}, []string{"result"}),
		realtimeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connections",
			Help:      "Open websocket connections",
		}),
		realtimeRegisteredUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_registered_users",
			Help:      "Users with a registered websocket connection",
		}),
		recommendationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_requests_total",
			Help:      "Recommendation lookups by kind and cache outcome",
		}, []string{"kind", "cache"}),
		maintenanceDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maintenance_notifications_deleted_total",
			Help:      "Read notifications removed by the retention job",
		}),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil || reg == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{
		m.notificationsCreated,
		m.notificationPersistFail,
		m.notificationPush,
		m.realtimeConnections,
		m.realtimeRegisteredUsers,
		m.recommendationRequests,
		m.maintenanceDeleted,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) NotificationCreated() {
	if m == nil {
		return
	}
	m.notificationsCreated.Inc()
}

func (m *Metrics) NotificationPersistFailed() {
	if m == nil {
		return
	}
	m.notificationPersistFail.Inc()
}

func (m *Metrics) NotificationPush(result string) {
	if m == nil {
		return
	}
	m.notificationPush.WithLabelValues(result).Inc()
}

func (m *Metrics) SetRealtimeConnections(n int) {
	if m == nil {
		return
	}
	m.realtimeConnections.Set(float64(n))
}

func (m *Metrics) SetRegisteredUsers(n int) {
	if m == nil {
		return
	}
	m.realtimeRegisteredUsers.Set(float64(n))
}

func (m *Metrics) RecommendationRequest(kind string, cacheHit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.recommendationRequests.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) NotificationsPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.maintenanceDeleted.Add(float64(n))
}
