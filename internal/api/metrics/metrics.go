// Package metrics defines all custom Prometheus metrics for the turnover
// scheduling API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "turnover"

// AuthAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts registered users by role.
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// PropertiesCreatedTotal counts registered properties.
var PropertiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties created.",
	},
)

// BookingsCreatedTotal counts created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingConfirmationsTotal counts confirmation actions.
// Label:
//   - role: the confirming user's role ("host", "cleaner", or "admin" for
//     the accepted no-op case)
var BookingConfirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_confirmations_total",
		Help:      "Total number of booking confirmation actions, by confirming role.",
	},
	[]string{"role"},
)

// BookingStatusUpdatesTotal counts direct status updates (including cancels).
// Label:
//   - status: the new status value
var BookingStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_updates_total",
		Help:      "Total number of direct booking status updates, by new status.",
	},
	[]string{"status"},
)
