package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScrapeRequests counts upstream scrape attempts by operation and outcome.
	ScrapeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "belshop_scrape_requests_total",
			Help: "Upstream scrape requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// OrdersCreated counts orders accepted by the API.
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "belshop_orders_created_total",
			Help: "Orders accepted by the API",
		},
	)

	// Notifications counts order notification attempts by outcome.
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "belshop_order_notifications_total",
			Help: "Order notification attempts by outcome",
		},
		[]string{"outcome"},
	)
)
