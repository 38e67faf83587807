package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type StoreMetrics struct {
	OrderListFetches  prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	OrdersPlaced      prometheus.Counter
	AddressLookups    prometheus.Counter
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &StoreMetrics{
		OrderListFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foodspace",
			Name:      "order_list_fetches_total",
			Help:      "Seller order list fetches served.",
		}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodspace",
			Name:      "order_status_transitions_total",
			Help:      "Successful order status transitions by target status.",
		}, []string{"status"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foodspace",
			Name:      "orders_placed_total",
			Help:      "Order lines created through checkout.",
		}),
		AddressLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foodspace",
			Name:      "delivery_address_lookups_total",
			Help:      "Delivery address lookups served.",
		}),
	}
	reg.MustRegister(m.OrderListFetches, m.StatusTransitions, m.OrdersPlaced, m.AddressLookups)
	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}
