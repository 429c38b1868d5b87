package metrics

import (
	"math"
	"net/http"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luxfi/lob/pkg/lob"
)

// BookMetrics exposes order book activity through a private Prometheus
// registry: operation counters, trade counters and a histogram fed by a
// trade sink, and top-of-book gauges refreshed from the book.
type BookMetrics struct {
	symbol   string
	registry *prometheus.Registry
	logger   log.Logger

	ordersAdded     prometheus.Counter
	ordersCancelled prometheus.Counter
	ordersAmended   prometheus.Counter
	ordersRejected  prometheus.Counter

	tradesExecuted prometheus.Counter
	tradedVolume   prometheus.Counter
	tradeSize      prometheus.Histogram

	bestBid    prometheus.Gauge
	bestAsk    prometheus.Gauge
	openOrders prometheus.Gauge
	version    prometheus.Gauge
}

// NewBookMetrics creates the metric set for one book. symbol becomes a
// constant label on every series.
func NewBookMetrics(symbol string) *BookMetrics {
	logger := log.Root().New("module", "metrics")
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"symbol": symbol}

	m := &BookMetrics{
		symbol:   symbol,
		registry: registry,
		logger:   logger,

		ordersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "orders_added_total",
			Help:        "Total number of orders accepted",
			ConstLabels: labels,
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "orders_cancelled_total",
			Help:        "Total number of orders cancelled",
			ConstLabels: labels,
		}),
		ordersAmended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "orders_amended_total",
			Help:        "Total number of orders amended",
			ConstLabels: labels,
		}),
		ordersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "orders_rejected_total",
			Help:        "Total number of operations rejected by validation",
			ConstLabels: labels,
		}),

		tradesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "trades_executed_total",
			Help:        "Total number of trades executed",
			ConstLabels: labels,
		}),
		tradedVolume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lob",
			Name:        "traded_volume_total",
			Help:        "Total quantity traded",
			ConstLabels: labels,
		}),
		tradeSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "lob",
			Name:        "trade_size",
			Help:        "Trade size distribution",
			Buckets:     []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			ConstLabels: labels,
		}),

		bestBid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "lob",
			Name:        "best_bid",
			Help:        "Highest bid price, 0 when the bid side is empty",
			ConstLabels: labels,
		}),
		bestAsk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "lob",
			Name:        "best_ask",
			Help:        "Lowest ask price, 0 when the ask side is empty",
			ConstLabels: labels,
		}),
		openOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "lob",
			Name:        "open_orders",
			Help:        "Number of resting orders",
			ConstLabels: labels,
		}),
		version: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "lob",
			Name:        "book_version",
			Help:        "Mutation counter of the book",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		m.ordersAdded,
		m.ordersCancelled,
		m.ordersAmended,
		m.ordersRejected,
		m.tradesExecuted,
		m.tradedVolume,
		m.tradeSize,
		m.bestBid,
		m.bestAsk,
		m.openOrders,
		m.version,
	)

	return m
}

// Sink returns a trade sink feeding the trade counters and the size
// histogram. Combine it with other sinks via lob.MultiSink.
func (m *BookMetrics) Sink() lob.TradeSink {
	return lob.TradeSinkFunc(func(t lob.Trade) {
		m.tradesExecuted.Inc()
		m.tradedVolume.Add(float64(t.Quantity))
		m.tradeSize.Observe(float64(t.Quantity))
	})
}

// RecordAdd counts an accepted order.
func (m *BookMetrics) RecordAdd() {
	m.ordersAdded.Inc()
}

// RecordCancel counts a successful cancel.
func (m *BookMetrics) RecordCancel() {
	m.ordersCancelled.Inc()
}

// RecordAmend counts a successful amend.
func (m *BookMetrics) RecordAmend() {
	m.ordersAmended.Inc()
}

// RecordReject counts a rejected operation.
func (m *BookMetrics) RecordReject() {
	m.ordersRejected.Inc()
}

// Observe refreshes the top-of-book gauges from b.
func (m *BookMetrics) Observe(b *lob.Book) {
	m.bestBid.Set(b.BestBid())
	ask := b.BestAsk()
	if math.IsInf(ask, 1) {
		ask = 0
	}
	m.bestAsk.Set(ask)
	m.openOrders.Set(float64(b.Len()))
	m.version.Set(float64(b.Version()))
}

// Handler returns the scrape handler for this book's registry.
func (m *BookMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer exposes /metrics on addr in the background.
func (m *BookMetrics) StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			m.logger.Error("Metrics server failed", "error", err)
		}
	}()

	m.logger.Info("Prometheus metrics available", "addr", addr, "symbol", m.symbol)
}
